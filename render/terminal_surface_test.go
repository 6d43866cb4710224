package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

const (
	testCellSize = 20
	testGrid     = 20
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func backgroundAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestTerminalSurfaceLayoutCentersField(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	// 42 columns (20 cells * 2 + border) and 23 rows (20 + border + score line)
	x, y := s.FieldOrigin()
	if x != 30 || y != 4 {
		t.Errorf("FieldOrigin() = (%d, %d), want (30, 4)", x, y)
	}
}

func TestTerminalSurfaceLayoutSmallScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	x, y := s.FieldOrigin()
	if x != 1 || y != 1 {
		t.Errorf("FieldOrigin() = (%d, %d), want (1, 1) when screen is too small", x, y)
	}
}

func TestTerminalSurfaceFillRectPaintsCell(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	s.FillRect(3*testCellSize, 0, testCellSize, testCellSize, RgbSnake)

	col, row := s.ScreenPosition(core.Cell{X: 3, Y: 0})
	want := TcellColor(RgbSnake)
	for k := 0; k < 2; k++ {
		if got := backgroundAt(screen, col+k, row); got != want {
			t.Errorf("column %d: background = %v, want %v", col+k, got, want)
		}
	}

	// Neighbour cell untouched
	if got := backgroundAt(screen, col+2, row); got == want {
		t.Error("fill leaked into the next grid cell")
	}
}

func TestTerminalSurfaceClipsOutsideField(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	s.FillRect(-testCellSize, 0, testCellSize, testCellSize, RgbFood)
	s.FillRect(testGrid*testCellSize, 0, testCellSize, testCellSize, RgbFood)

	want := TcellColor(RgbFood)
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if backgroundAt(screen, x, y) == want {
				t.Fatalf("out of field fill painted terminal cell (%d, %d)", x, y)
			}
		}
	}
}

func TestTerminalSurfaceClearRect(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	s.FillRect(0, 0, testCellSize, testCellSize, RgbFood)
	s.ClearRect(0, 0, testGrid*testCellSize, testGrid*testCellSize)

	col, row := s.ScreenPosition(core.Cell{X: 0, Y: 0})
	if got := backgroundAt(screen, col, row); got != TcellColor(RgbBackground) {
		t.Errorf("after clear background = %v, want background color", got)
	}
}

func TestTerminalSurfaceSetText(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	s.SetText("Score: 12")
	s.SetText("Score: 3")

	if s.ScoreText() != "Score: 3" {
		t.Errorf("ScoreText() = %q, want %q", s.ScoreText(), "Score: 3")
	}

	_, originY := s.FieldOrigin()
	line := rowText(screen, originY+testGrid+1, 100)
	if !strings.Contains(line, "Score: 3") {
		t.Errorf("score line = %q, want it to contain %q", line, "Score: 3")
	}
	if strings.Contains(line, "Score: 12") {
		t.Error("previous score text was not cleared")
	}
}

func TestTerminalSurfaceDrawFrame(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)
	s.DrawFrame()

	x, y := s.FieldOrigin()
	if r, _, _, _ := screen.GetContent(x-1, y-1); r != tcell.RuneULCorner {
		t.Errorf("top-left corner = %q, want %q", r, tcell.RuneULCorner)
	}
	if r, _, _, _ := screen.GetContent(x+testGrid*2, y+testGrid); r != tcell.RuneLRCorner {
		t.Errorf("bottom-right corner = %q, want %q", r, tcell.RuneLRCorner)
	}
	if r, _, _, _ := screen.GetContent(x-1, y+5); r != tcell.RuneVLine {
		t.Errorf("left edge = %q, want %q", r, tcell.RuneVLine)
	}
}

func TestGameOverOverlayBlocksUntilAck(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	s := NewTerminalSurface(screen, testCellSize, testGrid, testGrid)

	waited := 0
	overlay := NewGameOverOverlay(s, func() { waited++ })
	overlay.NotifyGameOver("Game over!", 7)

	if waited != 1 {
		t.Errorf("await called %d times, want 1", waited)
	}

	var found, foundScore bool
	for y := 0; y < 30; y++ {
		line := rowText(screen, y, 100)
		if strings.Contains(line, "Game over!") {
			found = true
		}
		if strings.Contains(line, "Score: 7") {
			foundScore = true
		}
	}
	if !found {
		t.Error("game over message not drawn")
	}
	if !foundScore {
		t.Error("final score not drawn")
	}
}

func TestFloorCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, floor, ceil int
	}{
		{0, 20, 0, 0},
		{19, 20, 0, 1},
		{20, 20, 1, 1},
		{-1, 20, -1, 0},
		{-20, 20, -1, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.floor {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.floor)
		}
		if got := ceilDiv(tt.a, tt.b); got != tt.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.ceil)
		}
	}
}
