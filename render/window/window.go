// Package window replays the game's display list in a raylib desktop window
package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// ToColor converts an RGB value to an opaque raylib colour
func ToColor(c core.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// KeyCode translates a raylib key to the game key code
// Letters and digits share their ASCII value; anything else maps to KeyNone
func KeyCode(key int32) input.KeyCode {
	switch key {
	case rl.KeyLeft, rl.KeyH:
		return input.KeyLeft
	case rl.KeyUp, rl.KeyK:
		return input.KeyUp
	case rl.KeyRight, rl.KeyL:
		return input.KeyRight
	case rl.KeyDown, rl.KeyJ:
		return input.KeyDown
	case rl.KeySpace:
		return input.KeySpace
	}
	if (key >= rl.KeyA && key <= rl.KeyZ) || (key >= rl.KeyZero && key <= rl.KeyNine) {
		return input.KeyCode(key)
	}
	return input.KeyNone
}

// GameOverBanner records the game over notification for the frame loop to draw
// The window cannot block inside a tick, so acknowledgment is polled by the caller
type GameOverBanner struct {
	active  bool
	message string
	score   int
}

// NotifyGameOver implements engine.Notifier
func (b *GameOverBanner) NotifyGameOver(message string, score int) {
	b.active = true
	b.message = message
	b.score = score
}

// Active reports whether the banner is showing
func (b *GameOverBanner) Active() bool { return b.active }

// Lines returns the banner text, top to bottom
func (b *GameOverBanner) Lines() []string {
	return []string{
		b.message,
		fmt.Sprintf(constants.ScoreTextFormat, b.score),
		constants.GameOverHint,
	}
}

// Renderer draws a display list at the window origin with the score strip below it
type Renderer struct {
	list   *render.DisplayList
	banner *GameOverBanner
}

// NewRenderer creates a renderer for list; banner may be nil
func NewRenderer(list *render.DisplayList, banner *GameOverBanner) *Renderer {
	return &Renderer{list: list, banner: banner}
}

// WindowSize returns the window dimensions needed for the field and score strip
func (r *Renderer) WindowSize() (int32, int32) {
	w, h := r.list.Size()
	return int32(w), int32(h + constants.WindowScoreHeight)
}

// Draw renders one frame
func (r *Renderer) Draw() {
	w, h := r.list.Size()

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(ToColor(core.RGBBlack))
	rl.DrawRectangle(0, 0, int32(w), int32(h), ToColor(render.RgbBackground))

	for _, op := range r.list.Ops() {
		rl.DrawRectangle(int32(op.X), int32(op.Y), int32(op.W), int32(op.H), ToColor(op.Color))
	}

	rl.DrawLine(0, int32(h), int32(w), int32(h), ToColor(render.RgbBorder))
	textY := int32(h) + (constants.WindowScoreHeight-constants.WindowFontSize)/2
	rl.DrawText(r.list.Text(), 4, textY, constants.WindowFontSize, ToColor(render.RgbScoreText))

	if r.banner != nil && r.banner.Active() {
		r.drawBanner(int32(w), int32(h))
	}
}

func (r *Renderer) drawBanner(w, h int32) {
	lines := r.banner.Lines()
	lineHeight := int32(constants.WindowFontSize + 6)

	boxWidth := int32(0)
	for _, l := range lines {
		boxWidth = max(boxWidth, rl.MeasureText(l, constants.WindowFontSize))
	}
	boxWidth += 40
	boxHeight := lineHeight*int32(len(lines)) + 20
	left := (w - boxWidth) / 2
	top := (h - boxHeight) / 2

	rl.DrawRectangle(left, top, boxWidth, boxHeight, ToColor(render.RgbOverlayBg))
	rl.DrawRectangleLines(left, top, boxWidth, boxHeight, ToColor(render.RgbOverlayFg))

	for i, l := range lines {
		fg := render.RgbOverlayFg
		if i == len(lines)-1 {
			fg = render.RgbOverlayDim
		}
		tw := rl.MeasureText(l, constants.WindowFontSize)
		rl.DrawText(l, left+(boxWidth-tw)/2, top+10+int32(i)*lineHeight, constants.WindowFontSize, ToColor(fg))
	}
}
