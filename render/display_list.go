package render

import "github.com/lixenwraith/vi-snake/core"

// FillOp is one recorded rectangle fill in pixel units
type FillOp struct {
	X, Y, W, H int
	Color      core.RGB
}

// DisplayList records draw calls for immediate-mode back-ends that repaint every frame
// A clear covering the whole field drops all recorded ops
type DisplayList struct {
	width  int
	height int
	ops    []FillOp
	text   string
}

// NewDisplayList creates a display list for a width x height pixel field
func NewDisplayList(width, height int) *DisplayList {
	return &DisplayList{
		width:  width,
		height: height,
		ops:    make([]FillOp, 0, 64),
	}
}

// ClearRect implements Surface
func (d *DisplayList) ClearRect(x, y, w, h int) {
	if x <= 0 && y <= 0 && x+w >= d.width && y+h >= d.height {
		d.ops = d.ops[:0]
		return
	}
	d.ops = append(d.ops, FillOp{X: x, Y: y, W: w, H: h, Color: RgbBackground})
}

// FillRect implements Surface
func (d *DisplayList) FillRect(x, y, w, h int, c core.RGB) {
	d.ops = append(d.ops, FillOp{X: x, Y: y, W: w, H: h, Color: c})
}

// SetText implements ScoreSink
func (d *DisplayList) SetText(text string) {
	d.text = text
}

// Ops returns the recorded fills in draw order
// The slice is reused by the next clear, callers must not retain it across ticks
func (d *DisplayList) Ops() []FillOp {
	return d.ops
}

// Text returns the last score text
func (d *DisplayList) Text() string {
	return d.text
}

// Size returns the field dimensions in pixels
func (d *DisplayList) Size() (int, int) {
	return d.width, d.height
}
