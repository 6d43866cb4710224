package render

import "github.com/lixenwraith/vi-snake/core"

// Surface is the 2D drawing context the game paints on
// Coordinates are pixels of a GridWidth*CellSize by GridHeight*CellSize field
type Surface interface {
	// ClearRect resets a pixel rectangle to the background
	ClearRect(x, y, w, h int)
	// FillRect paints a solid pixel rectangle
	FillRect(x, y, w, h int, c core.RGB)
}

// ScoreSink receives the human-readable score text once per tick
type ScoreSink interface {
	SetText(text string)
}
