package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/render"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake()

	want := []core.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Expected body %v, got %v", want, s.Body())
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected initial direction right, got %v", s.Direction())
	}
	if s.PendingGrowth() {
		t.Error("New snake should not have pending growth")
	}
}

// TestSnakeMoveKeepsLength verifies head advances by direction and length is invariant
func TestSnakeMoveKeepsLength(t *testing.T) {
	dirs := []core.Direction{core.DirDown, core.DirDown, core.DirRight, core.DirUp}
	s := NewSnakeFrom([]core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, core.DirRight)

	for i, d := range dirs {
		s.SetDirection(d)
		prevHead := s.Head()
		prevLen := s.Len()

		s.Move()

		if s.Head() != prevHead.Add(d) {
			t.Errorf("Step %d: expected head %v, got %v", i, prevHead.Add(d), s.Head())
		}
		if s.Len() != prevLen {
			t.Errorf("Step %d: expected length %d, got %d", i, prevLen, s.Len())
		}
	}
}

func TestSnakeMoveShiftsBody(t *testing.T) {
	s := NewSnake()
	s.Move()

	want := []core.Cell{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Expected body %v, got %v", want, s.Body())
	}
}

// TestSnakeGrow verifies growth keeps the tail exactly once
func TestSnakeGrow(t *testing.T) {
	s := NewSnake()
	s.Grow()
	s.Move()

	want := []core.Cell{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Expected body %v, got %v", want, s.Body())
	}
	if s.PendingGrowth() {
		t.Error("Growth should be consumed by Move")
	}

	s.Move()
	if s.Len() != 4 {
		t.Errorf("Expected length to stay 4 after second move, got %d", s.Len())
	}
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake()
	b := s.Body()
	b[0] = core.Cell{X: 99, Y: 99}

	if s.Head() == b[0] {
		t.Error("Mutating Body() result changed the snake")
	}
}

func TestSnakeHasEaten(t *testing.T) {
	s := NewSnake()
	if !s.HasEaten(core.Cell{X: 2, Y: 0}) {
		t.Error("Expected head cell to count as eaten")
	}
	if s.HasEaten(core.Cell{X: 1, Y: 0}) {
		t.Error("Body cell should not count as eaten")
	}
}

// TestSnakeCheckCollision verifies wall and self detection on a 20x20 grid
func TestSnakeCheckCollision(t *testing.T) {
	tests := []struct {
		name string
		body []core.Cell
		want CollisionKind
	}{
		{"free", []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}, CollisionNone},
		{"left wall", []core.Cell{{X: -1, Y: 5}, {X: 0, Y: 5}}, CollisionWall},
		{"right wall", []core.Cell{{X: 20, Y: 5}, {X: 19, Y: 5}}, CollisionWall},
		{"top wall", []core.Cell{{X: 5, Y: -1}, {X: 5, Y: 0}}, CollisionWall},
		{"bottom wall", []core.Cell{{X: 5, Y: 20}, {X: 5, Y: 19}}, CollisionWall},
		{"corner inside", []core.Cell{{X: 19, Y: 19}, {X: 18, Y: 19}}, CollisionNone},
		{"self", []core.Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}}, CollisionSelf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnakeFrom(tt.body, core.DirRight)
			if got := s.CollisionKind(20, 20); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := s.CheckCollision(20, 20); got != (tt.want != CollisionNone) {
				t.Errorf("CheckCollision = %v, inconsistent with kind %v", got, tt.want)
			}
		})
	}
}

// TestSnakeReversalCollides verifies turning back into the neck is fatal
func TestSnakeReversalCollides(t *testing.T) {
	s := NewSnake()
	s.SetDirection(core.DirLeft)
	s.Move()

	if got := s.CollisionKind(20, 20); got != CollisionSelf {
		t.Errorf("Expected self collision on reversal, got %v", got)
	}
}

func TestSnakeDraw(t *testing.T) {
	s := NewSnake()
	dl := render.NewDisplayList(400, 400)
	s.Draw(dl, 20)

	ops := dl.Ops()
	if len(ops) != 3 {
		t.Fatalf("Expected 3 fills, got %d", len(ops))
	}
	want := render.FillOp{X: 40, Y: 0, W: 20, H: 20, Color: render.RgbSnake}
	if ops[0] != want {
		t.Errorf("Expected head fill %+v, got %+v", want, ops[0])
	}
}
