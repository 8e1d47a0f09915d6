package world

import (
	"fmt"
	"math/rand"
)

// RoomSpec describes how many rooms to place and their size bounds.
type RoomSpec struct {
	Count       int
	Width       Range
	Height      Range
	Margin      int
	Padding     int
	MaxAttempts int
}

// roomSpec extracts the room placement parameters from the config.
func (c Config) roomSpec() RoomSpec {
	return RoomSpec{
		Count:       c.RoomCount,
		Width:       c.RoomWidth,
		Height:      c.RoomHeight,
		Margin:      c.Margin,
		Padding:     c.Padding,
		MaxAttempts: c.MaxAttempts,
	}
}

// PlaceRooms samples non-overlapping rooms into the grid by rejection sampling.
// Accepted rooms are painted as floor and returned in acceptance order, along with the
// number of candidates sampled. ErrRoomPlacement is returned with the rooms accepted so
// far if the attempt budget runs out.
func PlaceRooms(grid *Grid, rng *rand.Rand, spec RoomSpec) ([]Room, int, error) {
	rooms := make([]Room, 0, spec.Count)
	attempts := 0

	for len(rooms) < spec.Count {
		if attempts >= spec.MaxAttempts {
			return rooms, attempts, fmt.Errorf("%w: placed %d of %d rooms after %d attempts",
				ErrRoomPlacement, len(rooms), spec.Count, attempts)
		}
		attempts++

		w := spec.Width.Sample(rng)
		h := spec.Height.Sample(rng)
		candidate := Room{
			X:      rng.Intn(grid.Width() - w - spec.Margin),
			Y:      rng.Intn(grid.Height() - h - spec.Margin),
			Width:  w,
			Height: h,
		}

		if !isValidRoom(candidate, rooms, grid, spec) {
			continue
		}

		rooms = append(rooms, candidate)
		carveRoom(grid, candidate)
	}

	return rooms, attempts, nil
}

// isValidRoom checks margin bounds and padding against every accepted room.
func isValidRoom(candidate Room, accepted []Room, grid *Grid, spec RoomSpec) bool {
	if !candidate.WithinMargin(grid.Width(), grid.Height(), spec.Margin) {
		return false
	}
	for _, other := range accepted {
		if candidate.Overlaps(other, spec.Padding) {
			return false
		}
	}
	return true
}

// carveRoom sets all tiles within the room to floor.
func carveRoom(grid *Grid, room Room) {
	for x := room.X; x < room.X+room.Width; x++ {
		for y := room.Y; y < room.Y+room.Height; y++ {
			grid.Set(x, y, TileFloor)
		}
	}
}
