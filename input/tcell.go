package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// viKeys are the home-row aliases for the arrows
var viKeys = map[rune]KeyCode{
	'h': KeyLeft,
	'j': KeyDown,
	'k': KeyUp,
	'l': KeyRight,
}

// KeyCodeFromTcell translates a terminal key event
// Printable ASCII letters and digits map to their upper-case code, other runes to KeyNone
func KeyCodeFromTcell(ev *tcell.EventKey) KeyCode {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyRune:
	default:
		return KeyNone
	}

	r := ev.Rune()
	if code, ok := viKeys[r]; ok {
		return code
	}
	switch {
	case r == ' ':
		return KeySpace
	case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		return KeyCode(unicode.ToUpper(r))
	}
	return KeyNone
}

// IsQuit reports whether ev should end the program
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
