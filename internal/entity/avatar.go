// Package entity provides the explorer that moves through the dungeon.
package entity

import (
	"errors"
	"math"

	"github.com/samdwyer/coinrush/internal/world"
)

// ErrNoFloor is returned when the grid has no floor tile to spawn on.
var ErrNoFloor = errors.New("no floor tiles to place avatar")

// Direction is a single-step movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset for the direction. Up is +y.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Avatar is the explorer. It occupies one cell, painted as TileAvatar, and
// remembers the tile it is standing on.
type Avatar struct {
	X, Y      int
	under     world.Tile
	collector world.CoinCollector
}

// SpawnAvatar places the avatar on the floor tile closest to the grid center by
// Manhattan distance. Ties go to the larger x, then the smaller y.
func SpawnAvatar(grid *world.Grid, collector world.CoinCollector) (*Avatar, error) {
	center := grid.Center()
	best := world.Point{X: -1, Y: -1}
	bestDist := math.MaxInt

	grid.ForEach(func(x, y int, t world.Tile) {
		if t != world.TileFloor {
			return
		}
		dist := abs(x-center.X) + abs(y-center.Y)
		if dist < bestDist || (dist == bestDist && (x > best.X || (x == best.X && y < best.Y))) {
			bestDist = dist
			best = world.Point{X: x, Y: y}
		}
	})

	if best.X < 0 {
		return nil, ErrNoFloor
	}

	a := &Avatar{
		X:         best.X,
		Y:         best.Y,
		under:     grid.At(best.X, best.Y),
		collector: collector,
	}
	grid.Set(a.X, a.Y, world.TileAvatar)
	return a, nil
}

// Position returns the current x, y coordinates.
func (a *Avatar) Position() (int, int) {
	return a.X, a.Y
}

// Move attempts a single step and reports whether the avatar moved. Walls and the
// grid edge block movement. Stepping onto a coin reports it to the collector before
// the coin tile becomes floor.
func (a *Avatar) Move(grid *world.Grid, dir Direction) bool {
	dx, dy := dir.Delta()
	nx, ny := a.X+dx, a.Y+dy

	if !grid.InBounds(nx, ny) || !grid.At(nx, ny).IsPassable() {
		return false
	}

	grid.Set(a.X, a.Y, a.under)

	a.under = grid.At(nx, ny)
	if a.under == world.TileCoin {
		if a.collector != nil {
			a.collector.Collect()
		}
		a.under = world.TileFloor
	}

	a.X, a.Y = nx, ny
	grid.Set(a.X, a.Y, world.TileAvatar)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
