package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/render"
)

// CollisionKind tells wall and self collisions apart for logging
// Game flow treats every kind other than CollisionNone the same
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// Snake is an ordered body of cells, head first, moving one cell per tick
type Snake struct {
	body          []core.Cell
	direction     core.Direction
	pendingGrowth bool
}

// NewSnake creates the starting snake: three cells along the top row, heading right
func NewSnake() *Snake {
	return NewSnakeFrom([]core.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, core.DirRight)
}

// NewSnakeFrom creates a snake with an explicit body (head first) and direction
// Body must hold at least one cell
func NewSnakeFrom(body []core.Cell, dir core.Direction) *Snake {
	b := make([]core.Cell, len(body), len(body)+8)
	copy(b, body)
	return &Snake{
		body:      b,
		direction: dir,
	}
}

// Head returns the first body cell
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// SetDirection overwrites the heading unconditionally, reversing into the body is allowed
func (s *Snake) SetDirection(d core.Direction) {
	s.direction = d
}

// NextHead returns the cell the head moves to on the next Move
func (s *Snake) NextHead() core.Cell {
	return s.body[0].Add(s.direction)
}

// Grow defers tail removal for the next Move, lengthening the body by one
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// PendingGrowth reports whether the next Move keeps the tail
func (s *Snake) PendingGrowth() bool {
	return s.pendingGrowth
}

// Move inserts the new head and drops the tail unless growth is pending
func (s *Snake) Move() {
	newHead := s.NextHead()

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	if s.pendingGrowth {
		s.pendingGrowth = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// HasEaten reports whether the head is on the food cell
func (s *Snake) HasEaten(food core.Cell) bool {
	return s.body[0] == food
}

// CheckCollision reports whether the head left the grid or overlaps the rest of the body
func (s *Snake) CheckCollision(boundsWidth, boundsHeight int) bool {
	return s.CollisionKind(boundsWidth, boundsHeight) != CollisionNone
}

// CollisionKind classifies the current head position
func (s *Snake) CollisionKind(boundsWidth, boundsHeight int) CollisionKind {
	head := s.body[0]
	if !head.InBounds(boundsWidth, boundsHeight) {
		return CollisionWall
	}
	for _, c := range s.body[1:] {
		if c == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// Draw fills every body cell as a cellSize square
func (s *Snake) Draw(surface render.Surface, cellSize int) {
	for _, c := range s.body {
		surface.FillRect(c.X*cellSize, c.Y*cellSize, cellSize, cellSize, render.RgbSnake)
	}
}
