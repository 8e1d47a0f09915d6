package world

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/coinrush/internal/logger"
)

// coinExclusionRadius is the Chebyshev half-width of the coin-free square around the
// grid center, where the avatar spawns.
const coinExclusionRadius = 5

// CoinCollector is notified each time the avatar picks up a coin.
type CoinCollector interface {
	Collect()
}

// CoinLedger tracks coins placed in the world and how many have been collected.
type CoinLedger struct {
	requested int
	collected int
	positions mapset.Set[Point]
}

// NewCoinLedger creates an empty ledger for the requested number of coins.
func NewCoinLedger(requested int) *CoinLedger {
	return &CoinLedger{
		requested: requested,
		positions: mapset.New[Point](),
	}
}

// Collect records one collected coin.
func (l *CoinLedger) Collect() {
	l.collected++
}

// Requested returns the number of coins asked for at generation time.
func (l *CoinLedger) Requested() int {
	return l.requested
}

// Placed returns the number of coins actually placed.
func (l *CoinLedger) Placed() int {
	return l.positions.Size()
}

// Collected returns the number of coins collected so far.
func (l *CoinLedger) Collected() int {
	return l.collected
}

// AllCollected returns true once every placed coin is collected. A world without
// coins is never complete.
func (l *CoinLedger) AllCollected() bool {
	placed := l.Placed()
	return l.collected >= placed && placed > 0
}

// WasPlacedAt returns true if a coin was originally placed at (x, y).
func (l *CoinLedger) WasPlacedAt(x, y int) bool {
	return l.positions.Has(Point{X: x, Y: y})
}

// Positions returns the placed coin positions in no particular order.
func (l *CoinLedger) Positions() []Point {
	points := make([]Point, 0, l.positions.Size())
	l.positions.Each(func(p Point) {
		points = append(points, p)
	})
	return points
}

// PlaceCoins scatters up to requested coins over floor tiles outside the center
// exclusion zone. Running out of candidates is not an error; the ledger simply
// reports fewer placed coins.
func PlaceCoins(grid *Grid, rng *rand.Rand, requested int) *CoinLedger {
	ledger := NewCoinLedger(requested)

	var floors []Point
	grid.ForEach(func(x, y int, t Tile) {
		if t == TileFloor {
			floors = append(floors, Point{X: x, Y: y})
		}
	})
	if len(floors) == 0 {
		logger.Log.Warn("no floor tiles available for coins")
		return ledger
	}

	rng.Shuffle(len(floors), func(i, j int) {
		floors[i], floors[j] = floors[j], floors[i]
	})

	center := grid.Center()
	for _, p := range floors {
		if ledger.Placed() >= requested {
			break
		}
		if inExclusionZone(p, center) {
			continue
		}
		grid.Set(p.X, p.Y, TileCoin)
		ledger.positions.Put(p)
	}

	if ledger.Placed() < requested {
		logger.Log.WithFields(logrus.Fields{
			"requested": requested,
			"placed":    ledger.Placed(),
		}).Warn("placed fewer coins than requested")
	}

	return ledger
}

// inExclusionZone reports whether p lies inside the coin-free square around center.
func inExclusionZone(p, center Point) bool {
	return abs(p.X-center.X) < coinExclusionRadius && abs(p.Y-center.Y) < coinExclusionRadius
}
