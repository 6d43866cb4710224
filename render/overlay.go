package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

// GameOverOverlay draws the modal game over box over the field and blocks until acknowledged
type GameOverOverlay struct {
	surface *TerminalSurface
	await   func()
}

// NewGameOverOverlay creates the modal; await blocks until the player acknowledges, nil returns immediately
func NewGameOverOverlay(surface *TerminalSurface, await func()) *GameOverOverlay {
	return &GameOverOverlay{
		surface: surface,
		await:   await,
	}
}

// NotifyGameOver draws the modal, flushes it and waits for acknowledgment
func (o *GameOverOverlay) NotifyGameOver(message string, score int) {
	lines := []string{
		message,
		fmt.Sprintf(constants.ScoreTextFormat, score),
		constants.GameOverHint,
	}

	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, len([]rune(l)))
	}
	boxWidth += 4
	boxHeight := len(lines) + 2

	s := o.surface
	fieldCols := s.gridW * constants.TerminalCellColumns
	left := s.originX + max(0, (fieldCols-boxWidth)/2)
	top := s.originY + max(0, (s.gridH-boxHeight)/2)

	bg := tcell.StyleDefault.Background(TcellColor(RgbOverlayBg))
	for y := 0; y < boxHeight; y++ {
		for x := 0; x < boxWidth; x++ {
			s.screen.SetContent(left+x, top+y, ' ', nil, bg)
		}
	}

	for i, l := range lines {
		fg := RgbOverlayFg
		if i == len(lines)-1 {
			fg = RgbOverlayDim
		}
		style := bg.Foreground(TcellColor(fg))
		if i == 0 {
			style = style.Bold(true)
		}
		offset := (boxWidth - len([]rune(l))) / 2
		s.putText(left+offset, top+1+i, l, style, boxWidth)
	}

	s.Show()

	if o.await != nil {
		o.await()
	}
}
