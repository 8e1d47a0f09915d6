package world

import (
	"context"
	"errors"
	"testing"
)

func generate(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := Generate(context.Background(), seed, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate(%d) failed: %v", seed, err)
	}
	return w
}

func TestWorldReproducibility(t *testing.T) {
	// Generate two worlds with the same seed
	seed := int64(12345)
	w1 := generate(t, seed)
	w2 := generate(t, seed)

	// Verify same number of rooms
	if len(w1.Rooms) != len(w2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(w1.Rooms), len(w2.Rooms))
	}

	// Verify rooms are in same positions
	for i := range w1.Rooms {
		if w1.Rooms[i] != w2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, w1.Rooms[i], w2.Rooms[i])
		}
	}

	// Verify tiles are identical
	if !w1.Grid.Equal(w2.Grid) {
		t.Error("Grids generated from the same seed differ")
	}

	if w1.Coins.Placed() != w2.Coins.Placed() {
		t.Errorf("Coin count mismatch: %d != %d", w1.Coins.Placed(), w2.Coins.Placed())
	}
	for _, p := range w1.Coins.Positions() {
		if !w2.Coins.WasPlacedAt(p.X, p.Y) {
			t.Errorf("Coin at %+v missing from second world", p)
		}
	}
}

func TestWorldDifferentSeeds(t *testing.T) {
	w1 := generate(t, 12345)
	w2 := generate(t, 54321)

	if w1.Grid.Equal(w2.Grid) {
		t.Error("Worlds with different seeds should not be identical")
	}
}

func TestWorldRoomValidity(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 20; seed++ {
		w := generate(t, seed)

		if len(w.Rooms) != cfg.RoomCount {
			t.Fatalf("seed %d: expected %d rooms, got %d", seed, cfg.RoomCount, len(w.Rooms))
		}

		for i, r := range w.Rooms {
			if !r.WithinMargin(cfg.Width, cfg.Height, cfg.Margin) {
				t.Errorf("seed %d: room %d %+v violates margin", seed, i, r)
			}
			if r.Width < cfg.RoomWidth.Min || r.Width >= cfg.RoomWidth.Max {
				t.Errorf("seed %d: room %d width %d out of range", seed, i, r.Width)
			}
			if r.Height < cfg.RoomHeight.Min || r.Height >= cfg.RoomHeight.Max {
				t.Errorf("seed %d: room %d height %d out of range", seed, i, r.Height)
			}
			for j := i + 1; j < len(w.Rooms); j++ {
				if r.Overlaps(w.Rooms[j], cfg.Padding) {
					t.Errorf("seed %d: rooms %d and %d are closer than padding", seed, i, j)
				}
			}
		}
	}
}

func TestWorldSpanningTree(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := generate(t, seed)

		if len(w.Corridors) != len(w.Rooms)-1 {
			t.Fatalf("seed %d: expected %d corridors, got %d", seed, len(w.Rooms)-1, len(w.Corridors))
		}

		ds := NewDisjointSet(len(w.Rooms))
		for _, c := range w.Corridors {
			if !ds.Union(c.From, c.To) {
				t.Errorf("seed %d: corridor %+v closes a cycle", seed, c)
			}
		}
		if !ds.AllConnected() {
			t.Errorf("seed %d: corridor graph is not connected", seed)
		}

		// Every room must also be reachable by walking the carved tiles
		reachable := reachableFrom(w.Grid, w.Rooms[0])
		for i, r := range w.Rooms {
			cx, cy := r.Center()
			if !reachable[Point{X: cx, Y: cy}] {
				t.Errorf("seed %d: room %d is not reachable on foot", seed, i)
			}
		}
	}
}

// reachableFrom flood-fills walkable tiles from the center of start.
func reachableFrom(g *Grid, start Room) map[Point]bool {
	cx, cy := start.Center()
	seen := map[Point]bool{{X: cx, Y: cy}: true}
	queue := []Point{{X: cx, Y: cy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			t := g.At(n.X, n.Y)
			if seen[n] || t == TileNothing || t == TileWall {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestWorldWallClosure(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		w := generate(t, seed)
		w.Grid.ForEach(func(x, y int, tile Tile) {
			if tile != TileFloor && tile != TileCoin {
				return
			}
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if w.Grid.InBounds(x+dx, y+dy) && w.Grid.At(x+dx, y+dy) == TileNothing {
						t.Errorf("seed %d: floor (%d,%d) borders nothing at (%d,%d)", seed, x, y, x+dx, y+dy)
					}
				}
			}
		})
	}
}

func TestWorldCoinBounds(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 10; seed++ {
		w := generate(t, seed)

		if w.Coins.Placed() > cfg.CoinCount {
			t.Errorf("seed %d: placed %d coins, requested %d", seed, w.Coins.Placed(), cfg.CoinCount)
		}
		if got := w.Grid.Count(TileCoin); got != w.Coins.Placed() {
			t.Errorf("seed %d: grid holds %d coins, ledger says %d", seed, got, w.Coins.Placed())
		}
		center := w.Grid.Center()
		for _, p := range w.Coins.Positions() {
			if inExclusionZone(p, center) {
				t.Errorf("seed %d: coin %+v inside exclusion zone", seed, p)
			}
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10

	_, err := Generate(context.Background(), 1, cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestGeneratePlacementBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.RoomCount = 50
	cfg.RoomWidth = Range{Min: 3, Max: 5}
	cfg.RoomHeight = Range{Min: 3, Max: 5}
	cfg.MaxAttempts = 500

	_, err := Generate(context.Background(), 7, cfg)
	if !errors.Is(err, ErrRoomPlacement) {
		t.Fatalf("Expected ErrRoomPlacement, got %v", err)
	}
}

func TestRoomIndexAt(t *testing.T) {
	w := generate(t, 99)
	r := w.Rooms[3]
	if got := w.RoomIndexAt(r.X, r.Y); got != 3 {
		t.Errorf("Expected room 3 at its corner, got %d", got)
	}
	if got := w.RoomIndexAt(0, 0); got != -1 {
		t.Errorf("Expected -1 at the world corner, got %d", got)
	}
}
