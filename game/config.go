package game

import (
	"errors"
	"fmt"
	"time"

	"snake-stones/game/types"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid game config")

// Game constants
const (
	DefaultWidth        = 32
	DefaultHeight       = 24
	DefaultCellSize     = 20
	DefaultSpeed        = 15 // ticks per second
	DefaultStoneCadence = 5  // apples between stones

	MaxSide     = 1000 // cells per board side
	MaxCellSize = 200  // pixels
	MaxSpeed    = 1000 // ticks per second
)

// Config holds everything a session needs to start
type Config struct {
	Width          int
	Height         int
	CellSize       int // pixels per cell for the graphical frontends
	Speed          int // ticks per second
	StoneCadence   int
	Boundary       types.Boundary
	Seed           uint64 // 0 picks a seed from the clock
	Start          *types.Point
	StartDirection types.Direction
}

func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		CellSize:       DefaultCellSize,
		Speed:          DefaultSpeed,
		StoneCadence:   DefaultStoneCadence,
		Boundary:       types.BoundaryWrap,
		StartDirection: types.Right,
	}
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// StartPosition is the configured start cell, or the centre of the grid
func (c Config) StartPosition() types.Point {
	if c.Start != nil {
		return *c.Start
	}
	return c.Grid().Center()
}

// TickInterval is the time between two snake moves
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Speed)
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > MaxSide || c.Height > MaxSide {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells per side", ErrInvalidConfig, c.Width, c.Height, MaxSide)
	}
	if c.Width*c.Height < 3 {
		return fmt.Errorf("%w: grid %dx%d is too small to play", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 || c.CellSize > MaxCellSize {
		return fmt.Errorf("%w: cell size %d must be within 1..%d", ErrInvalidConfig, c.CellSize, MaxCellSize)
	}
	if c.Speed <= 0 || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %d must be within 1..%d", ErrInvalidConfig, c.Speed, MaxSpeed)
	}
	if c.StoneCadence <= 0 {
		return fmt.Errorf("%w: stone cadence %d must be positive", ErrInvalidConfig, c.StoneCadence)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: start direction %d", ErrInvalidConfig, c.StartDirection)
	}
	if start := c.StartPosition(); !c.Grid().Contains(start) {
		return fmt.Errorf("%w: start %v is outside the grid", ErrInvalidConfig, start)
	}
	return nil
}
