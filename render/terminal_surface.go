package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// TerminalSurface paints the pixel field onto a tcell screen
// Each grid cell spans TerminalCellColumns columns and one row, the field is framed and centered
type TerminalSurface struct {
	screen   tcell.Screen
	cellSize int
	gridW    int
	gridH    int

	// Top-left terminal cell of the field interior
	originX int
	originY int

	scoreText string
}

// NewTerminalSurface creates a surface for a gridWidth x gridHeight field of cellSize pixel cells
func NewTerminalSurface(screen tcell.Screen, cellSize, gridWidth, gridHeight int) *TerminalSurface {
	s := &TerminalSurface{
		screen:   screen,
		cellSize: cellSize,
		gridW:    gridWidth,
		gridH:    gridHeight,
	}
	s.Layout()
	return s
}

// Layout recomputes the field position from the current screen size
func (s *TerminalSurface) Layout() {
	width, height := s.screen.Size()

	border := constants.TerminalBorder
	totalCols := s.gridW*constants.TerminalCellColumns + 2*border
	totalRows := s.gridH + 2*border + constants.ScoreLineGap + 1

	s.originX = max(0, (width-totalCols)/2) + border
	s.originY = max(0, (height-totalRows)/2) + border
}

// FieldOrigin returns the terminal coordinates of grid cell (0,0)
func (s *TerminalSurface) FieldOrigin() (int, int) {
	return s.originX, s.originY
}

// ScreenPosition returns the left terminal column and row of a grid cell
func (s *TerminalSurface) ScreenPosition(c core.Cell) (int, int) {
	return s.originX + c.X*constants.TerminalCellColumns, s.originY + c.Y
}

// ClearRect implements Surface
func (s *TerminalSurface) ClearRect(x, y, w, h int) {
	s.paint(x, y, w, h, s.backgroundStyle())
}

// FillRect implements Surface
func (s *TerminalSurface) FillRect(x, y, w, h int, c core.RGB) {
	s.paint(x, y, w, h, tcell.StyleDefault.Background(TcellColor(c)))
}

// SetText implements ScoreSink, the text is drawn on the line below the frame
func (s *TerminalSurface) SetText(text string) {
	s.scoreText = text

	row := s.scoreRow()
	left := s.originX - constants.TerminalBorder
	width := s.gridW*constants.TerminalCellColumns + 2*constants.TerminalBorder
	style := s.backgroundStyle().Foreground(TcellColor(RgbScoreText))

	for i := 0; i < width; i++ {
		s.screen.SetContent(left+i, row, ' ', nil, style)
	}
	s.putText(left, row, text, style, width)
}

// ScoreText returns the last text written to the score line
func (s *TerminalSurface) ScoreText() string {
	return s.scoreText
}

// DrawFrame draws the border around the field
func (s *TerminalSurface) DrawFrame() {
	style := s.backgroundStyle().Foreground(TcellColor(RgbBorder))

	left := s.originX - 1
	top := s.originY - 1
	right := s.originX + s.gridW*constants.TerminalCellColumns
	bottom := s.originY + s.gridH

	for x := left + 1; x < right; x++ {
		s.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// Show flushes pending changes to the terminal
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

// Redraw clears the whole screen after a resize and repaints the static parts
// Field content is repainted by the next tick
func (s *TerminalSurface) Redraw() {
	s.screen.Clear()
	s.Layout()
	s.DrawFrame()
	s.ClearRect(0, 0, s.gridW*s.cellSize, s.gridH*s.cellSize)
	s.SetText(s.scoreText)
	s.screen.Sync()
}

func (s *TerminalSurface) scoreRow() int {
	return s.originY + s.gridH + constants.TerminalBorder + constants.ScoreLineGap
}

func (s *TerminalSurface) backgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(TcellColor(RgbBackground))
}

// paint fills the terminal cells covered by a pixel rectangle, clipped to the field
func (s *TerminalSurface) paint(x, y, w, h int, style tcell.Style) {
	if w <= 0 || h <= 0 {
		return
	}

	cx0 := max(floorDiv(x, s.cellSize), 0)
	cy0 := max(floorDiv(y, s.cellSize), 0)
	cx1 := min(ceilDiv(x+w, s.cellSize), s.gridW)
	cy1 := min(ceilDiv(y+h, s.cellSize), s.gridH)

	for cy := cy0; cy < cy1; cy++ {
		for cx := cx0; cx < cx1; cx++ {
			col, row := s.ScreenPosition(core.Cell{X: cx, Y: cy})
			for k := 0; k < constants.TerminalCellColumns; k++ {
				s.screen.SetContent(col+k, row, ' ', nil, style)
			}
		}
	}
}

// putText writes text starting at (x, y), truncated to limit columns
func (s *TerminalSurface) putText(x, y int, text string, style tcell.Style, limit int) {
	i := 0
	for _, ch := range text {
		if i >= limit {
			return
		}
		s.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
