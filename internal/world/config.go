package world

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 40

	defaultRoomCount   = 20
	defaultMargin      = 2 // Min distance between a room and the world border
	defaultPadding     = 2 // Min distance between rooms
	defaultCoinCount   = 10
	defaultMaxAttempts = 10000
)

var (
	// ErrInvalidConfig is returned when a configuration can never produce a dungeon.
	ErrInvalidConfig = errors.New("invalid world config")
	// ErrRoomPlacement is returned when rooms could not be placed within the attempt budget.
	ErrRoomPlacement = errors.New("room placement exhausted attempts")
)

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min, Max int
}

// Sample returns a uniformly distributed value in [Min, Max).
func (r Range) Sample(rng *rand.Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min)
}

// Config holds the fixed generation constants. Together with a seed it fully
// determines the generated world.
type Config struct {
	Width, Height int

	RoomCount   int
	RoomWidth   Range
	RoomHeight  Range
	Margin      int
	Padding     int
	MaxAttempts int // Candidate rooms sampled before giving up

	CoinCount int
}

// DefaultConfig returns the standard Coin Rush layout parameters.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		RoomCount:   defaultRoomCount,
		RoomWidth:   Range{Min: 3, Max: 9},
		RoomHeight:  Range{Min: 4, Max: 12},
		Margin:      defaultMargin,
		Padding:     defaultPadding,
		MaxAttempts: defaultMaxAttempts,
		CoinCount:   defaultCoinCount,
	}
}

// Validate rejects configurations that can never be satisfied.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.RoomCount < 1 {
		return fmt.Errorf("%w: room count %d", ErrInvalidConfig, c.RoomCount)
	}
	if err := validateRange("room width", c.RoomWidth); err != nil {
		return err
	}
	if err := validateRange("room height", c.RoomHeight); err != nil {
		return err
	}
	if c.Margin < 0 || c.Padding < 0 {
		return fmt.Errorf("%w: negative margin %d or padding %d", ErrInvalidConfig, c.Margin, c.Padding)
	}
	// The largest sampled room plus both margins must leave room for a start position.
	if c.RoomWidth.Max-1+2*c.Margin >= c.Width {
		return fmt.Errorf("%w: rooms up to %d wide do not fit in width %d with margin %d",
			ErrInvalidConfig, c.RoomWidth.Max-1, c.Width, c.Margin)
	}
	if c.RoomHeight.Max-1+2*c.Margin >= c.Height {
		return fmt.Errorf("%w: rooms up to %d tall do not fit in height %d with margin %d",
			ErrInvalidConfig, c.RoomHeight.Max-1, c.Height, c.Margin)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.CoinCount < 0 {
		return fmt.Errorf("%w: coin count %d", ErrInvalidConfig, c.CoinCount)
	}
	return nil
}

func validateRange(name string, r Range) error {
	if r.Min < 1 || r.Max <= r.Min {
		return fmt.Errorf("%w: %s range [%d, %d)", ErrInvalidConfig, name, r.Min, r.Max)
	}
	return nil
}
