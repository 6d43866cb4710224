package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/render"
	"golang.org/x/exp/rand"
)

// Food is the single collectible cell on the grid
type Food struct {
	cell  core.Cell
	gridW int
	gridH int
}

// NewFood creates food on a gridWidth x gridHeight grid at a random cell
func NewFood(gridWidth, gridHeight int, rng *rand.Rand) *Food {
	f := &Food{
		gridW: gridWidth,
		gridH: gridHeight,
	}
	f.Spawn(rng)
	return f
}

// Spawn moves the food to a uniformly random cell, x and y drawn independently
// The snake body is not avoided
func (f *Food) Spawn(rng *rand.Rand) {
	f.cell = core.Cell{
		X: rng.Intn(f.gridW),
		Y: rng.Intn(f.gridH),
	}
}

// Place sets the food cell without a random draw
func (f *Food) Place(c core.Cell) {
	f.cell = c
}

// Cell returns the food position
func (f *Food) Cell() core.Cell {
	return f.cell
}

// Draw fills the food cell as a cellSize square
func (f *Food) Draw(surface render.Surface, cellSize int) {
	surface.FillRect(f.cell.X*cellSize, f.cell.Y*cellSize, cellSize, cellSize, render.RgbFood)
}
