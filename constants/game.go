package constants

import "time"

// Playfield Geometry (pixel units, cells are square)
const (
	// CellSize is the edge length of one grid cell in pixels
	CellSize = 20

	// GameWidth is the playfield width in pixels
	GameWidth = 400

	// GameHeight is the playfield height in pixels
	GameHeight = 400

	// GridWidth is the playfield width in cells
	GridWidth = GameWidth / CellSize

	// GridHeight is the playfield height in cells
	GridHeight = GameHeight / CellSize
)

// Game Loop Timing Constants
const (
	// SnakeSpeed is the game logic update interval (one snake step per tick)
	SnakeSpeed = 100 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS) for polled front-ends
	FrameUpdateInterval = 16 * time.Millisecond
)

// Snake Start State
const (
	// InitialSnakeLength is the body length at session start
	InitialSnakeLength = 3
)
