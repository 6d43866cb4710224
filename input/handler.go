package input

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
)

// DirectionSetter receives direction changes
type DirectionSetter interface {
	SetDirection(d core.Direction)
}

// Handler applies key codes to a direction target
// No queuing: the last accepted key before a tick wins
type Handler struct {
	target DirectionSetter

	statAccepted *atomic.Int64
	statIgnored  *atomic.Int64
}

// NewHandler creates a handler writing to target
func NewHandler(target DirectionSetter) *Handler {
	return &Handler{target: target}
}

// SetTarget rebinds the handler, used after a session restart
func (h *Handler) SetTarget(target DirectionSetter) { h.target = target }

// SetRegistry caches the input counters from reg
func (h *Handler) SetRegistry(reg *status.Registry) {
	h.statAccepted = reg.Ints.Get("input.accepted")
	h.statIgnored = reg.Ints.Get("input.ignored")
}

// HandleKey overwrites the target direction for arrow codes
// Returns false and changes nothing for any other code
func (h *Handler) HandleKey(code KeyCode) bool {
	dir, ok := code.Direction()
	if !ok || h.target == nil {
		if h.statIgnored != nil {
			h.statIgnored.Add(1)
		}
		return false
	}

	h.target.SetDirection(dir)
	if h.statAccepted != nil {
		h.statAccepted.Add(1)
	}
	return true
}
