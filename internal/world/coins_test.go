package world

import (
	"math/rand"
	"testing"
)

func TestPlaceCoinsAllInExclusionZone(t *testing.T) {
	grid := NewGrid(10, 10)
	carveRoom(grid, Room{X: 2, Y: 2, Width: 7, Height: 7})

	ledger := PlaceCoins(grid, rand.New(rand.NewSource(1)), 5)

	if ledger.Placed() != 0 {
		t.Errorf("Expected no coins in the exclusion zone, got %d", ledger.Placed())
	}
	if ledger.AllCollected() {
		t.Error("A world without coins must never be complete")
	}
}

func TestPlaceCoinsDegraded(t *testing.T) {
	grid := NewGrid(30, 30)
	grid.Set(1, 1, TileFloor)
	grid.Set(1, 2, TileFloor)
	grid.Set(28, 28, TileFloor)

	ledger := PlaceCoins(grid, rand.New(rand.NewSource(1)), 10)

	if ledger.Placed() != 3 {
		t.Fatalf("Expected 3 coins placed, got %d", ledger.Placed())
	}
	if ledger.Requested() != 10 {
		t.Errorf("Expected request of 10 recorded, got %d", ledger.Requested())
	}
	if grid.Count(TileFloor) != 0 {
		t.Errorf("Expected every floor converted to a coin, %d left", grid.Count(TileFloor))
	}
}

func TestPlaceCoinsRespectsRequest(t *testing.T) {
	grid := NewGrid(40, 40)
	carveRoom(grid, Room{X: 0, Y: 0, Width: 10, Height: 10})

	ledger := PlaceCoins(grid, rand.New(rand.NewSource(42)), 4)

	if ledger.Placed() != 4 {
		t.Errorf("Expected 4 coins, got %d", ledger.Placed())
	}
	for _, p := range ledger.Positions() {
		if grid.At(p.X, p.Y) != TileCoin {
			t.Errorf("Expected coin tile at %+v", p)
		}
	}
}

func TestCoinLedgerCollection(t *testing.T) {
	grid := NewGrid(30, 30)
	grid.Set(1, 1, TileFloor)
	grid.Set(2, 1, TileFloor)
	ledger := PlaceCoins(grid, rand.New(rand.NewSource(3)), 2)

	var collector CoinCollector = ledger
	collector.Collect()
	if ledger.AllCollected() {
		t.Error("One of two coins collected should not complete")
	}
	collector.Collect()
	if !ledger.AllCollected() {
		t.Error("Expected completion after collecting both coins")
	}
	if ledger.Collected() != 2 {
		t.Errorf("Expected 2 collected, got %d", ledger.Collected())
	}
}
