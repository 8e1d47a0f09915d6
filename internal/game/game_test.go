package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/coinrush/internal/gamedata"
	"github.com/samdwyer/coinrush/internal/vision"
	"github.com/samdwyer/coinrush/internal/world"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		digits  string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"007", 7, false},
		{"", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSeed(tt.digits)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSeed(%q) error = %v, wantErr %v", tt.digits, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSeed(%q) = %d, want %d", tt.digits, got, tt.want)
		}
	}

	if _, err := parseSeed(""); !errors.Is(err, errEmptySeed) {
		t.Errorf("Expected errEmptySeed, got %v", err)
	}
}

type point struct{ x, y int }

func (p point) Position() (int, int) { return p.x, p.y }

func TestDescribeTile(t *testing.T) {
	grid := world.NewGrid(30, 5)
	grid.Fill(world.TileFloor)
	grid.Set(1, 1, world.TileCoin)
	grid.Set(25, 1, world.TileWall)

	palette := gamedata.MustLoadPalette()
	sight := vision.New(grid)
	sight.SetObserver(point{1, 2})

	if got := describeTile(grid, sight, palette, 25, 1); got != "a wall" {
		t.Errorf("With sight off expected %q, got %q", "a wall", got)
	}

	sight.Toggle()
	if got := describeTile(grid, sight, palette, 1, 1); got != "a gold coin" {
		t.Errorf("Expected visible coin, got %q", got)
	}
	if got := describeTile(grid, sight, palette, 25, 1); got != "nothing" {
		t.Errorf("Expected unexplored cell to read %q, got %q", "nothing", got)
	}
}
