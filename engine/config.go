package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable playfield and timing configuration of a session
type Config struct {
	CellSize     int           // pixels per cell edge
	Width        int           // field width in pixels
	Height       int           // field height in pixels
	TickInterval time.Duration // one snake step per interval
}

// DefaultConfig returns the compile-time game configuration
func DefaultConfig() Config {
	return Config{
		CellSize:     constants.CellSize,
		Width:        constants.GameWidth,
		Height:       constants.GameHeight,
		TickInterval: constants.SnakeSpeed,
	}
}

// GridWidth returns the field width in cells
func (c Config) GridWidth() int {
	return c.Width / c.CellSize
}

// GridHeight returns the field height in cells
func (c Config) GridHeight() int {
	return c.Height / c.CellSize
}

// Validate checks that the field is a whole number of cells and fits the starting snake
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: field %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("%w: field %dx%d is not a multiple of cell size %d", ErrInvalidConfig, c.Width, c.Height, c.CellSize)
	}
	if c.GridWidth() < constants.InitialSnakeLength {
		return fmt.Errorf("%w: grid width %d cannot hold the starting snake", ErrInvalidConfig, c.GridWidth())
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}
