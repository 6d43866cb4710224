package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// Game palette
var (
	RgbSnake      = core.RGBGreen
	RgbFood       = core.RGBRed
	RgbBackground = core.RGB{R: 26, G: 27, B: 38}    // Tokyo Night background
	RgbBorder     = core.RGB{R: 180, G: 180, B: 180} // Brighter gray
	RgbScoreText  = core.RGBWhite
	RgbOverlayBg  = core.RGB{R: 128, G: 0, B: 0}     // Dark red modal
	RgbOverlayFg  = core.RGBWhite
	RgbOverlayDim = core.RGBWhite.Blend(RgbOverlayBg, 0.25) // Hint text, white tinted toward the modal
)

// TcellColor converts an explicit RGB to a tcell true color
func TcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
