package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/coinrush/internal/logger"
	"github.com/samdwyer/coinrush/internal/telemetry"
)

// World is a generated dungeon: its tile grid, rooms, corridors and coins.
type World struct {
	Seed      int64
	Grid      *Grid
	Rooms     []Room
	Corridors []Corridor
	Coins     *CoinLedger
}

// Generate builds a world from seed. The same seed and config always produce an
// identical grid, room list and coin layout.
func Generate(ctx context.Context, seed int64, cfg Config) (*World, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	startTime := time.Now()
	rng := rand.New(rand.NewSource(seed))
	grid := NewGrid(cfg.Width, cfg.Height)

	rooms, attempts, err := PlaceRooms(grid, rng, cfg.roomSpec())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "room placement failed")
		return nil, fmt.Errorf("generate world with seed %d: %w", seed, err)
	}

	corridors := ConnectRooms(grid, rooms)
	walls := PaintWalls(grid)
	coins := PlaceCoins(grid, rng, cfg.CoinCount)

	// Record telemetry
	span.SetAttributes(
		attribute.Int64("world.seed", seed),
		attribute.Int("world.width", cfg.Width),
		attribute.Int("world.height", cfg.Height),
		attribute.Int("world.room_count", len(rooms)),
		attribute.Int("world.room_attempts", attempts),
		attribute.Int("world.corridor_count", len(corridors)),
		attribute.Int("world.wall_count", walls),
		attribute.Int("world.coins_placed", coins.Placed()),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"rooms":     len(rooms),
		"attempts":  attempts,
		"corridors": len(corridors),
		"walls":     walls,
		"coins":     coins.Placed(),
	}).Debug("world generated")

	return &World{
		Seed:      seed,
		Grid:      grid,
		Rooms:     rooms,
		Corridors: corridors,
		Coins:     coins,
	}, nil
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (w *World) RoomIndexAt(x, y int) int {
	for i, room := range w.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}
