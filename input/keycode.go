package input

import "github.com/lixenwraith/vi-snake/core"

// KeyCode is a front-end independent key identifier
// Values follow the classic browser keyCode numbering
type KeyCode int

const (
	KeyNone  KeyCode = 0
	KeySpace KeyCode = 32
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
)

// directionKeys maps recognized codes to movement directions
var directionKeys = map[KeyCode]core.Direction{
	KeyLeft:  core.DirLeft,
	KeyUp:    core.DirUp,
	KeyRight: core.DirRight,
	KeyDown:  core.DirDown,
}

// Direction returns the movement direction bound to k
func (k KeyCode) Direction() (core.Direction, bool) {
	d, ok := directionKeys[k]
	return d, ok
}

func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return "unknown"
}
