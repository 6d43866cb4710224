package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestKeyCodeFromTcell verifies terminal key translation
func TestKeyCodeFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyCode
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), KeyLeft},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), KeyDown},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), KeyUp},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), KeyRight},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 65},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), 55},
		{"punct", tcell.NewEventKey(tcell.KeyRune, '%', tcell.ModNone), KeyNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyCodeFromTcell(tt.ev); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

// TestIsQuit verifies the quit keys
func TestIsQuit(t *testing.T) {
	quit := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quit {
		if !IsQuit(ev) {
			t.Errorf("Expected quit for %s", ev.Name())
		}
	}

	stay := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
	}
	for _, ev := range stay {
		if IsQuit(ev) {
			t.Errorf("Unexpected quit for %s", ev.Name())
		}
	}
}
