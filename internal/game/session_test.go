package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/coinrush/internal/world"
)

func testConfig(seed int64) Config {
	return Config{
		Seed:     seed,
		World:    world.DefaultConfig(),
		SavePath: "unused",
	}
}

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), testConfig(seed))
	if err != nil {
		t.Fatalf("NewSession(%d) failed: %v", seed, err)
	}
	return s
}

// randomKeys produces a reproducible mix of moves, toggles and noise keys.
func randomKeys(rng *rand.Rand, n int) string {
	keys := []rune("wasdwasdwasdWASDlx:")
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(keys[rng.Intn(len(keys))])
	}
	return b.String()
}

func TestSessionStartsOnCenterMostFloor(t *testing.T) {
	s := newSession(t, 2024)

	x, y := s.Avatar().Position()
	if s.Grid().At(x, y) != world.TileAvatar {
		t.Errorf("Expected avatar tile at (%d,%d)", x, y)
	}
	if s.Vision().Enabled() {
		t.Error("Line of sight should start off")
	}
	if s.State() != StateExplore {
		t.Errorf("Expected explore state, got %s", s.State())
	}
}

func TestSessionApply(t *testing.T) {
	s := newSession(t, 5)

	if s.Apply('x') {
		t.Error("Unknown key should not be applied")
	}
	if !s.Apply('L') {
		t.Fatal("Upper-case toggle should be applied")
	}
	if !s.Vision().Enabled() {
		t.Error("Expected line of sight on after toggle")
	}

	x, y := s.Avatar().Position()
	if !s.Vision().Visible().At(x, y) {
		t.Error("Avatar cell must be visible with line of sight on")
	}

	s.Apply('w')
	s.Apply('D')
	if got := s.History(); got != "lwd" {
		t.Errorf("Expected history %q, got %q", "lwd", got)
	}
}

func TestSessionVisionFollowsAvatar(t *testing.T) {
	s := newSession(t, 77)
	s.Apply('l')

	for _, key := range "wwwwaaaassssdddd" {
		s.Apply(key)
		x, y := s.Avatar().Position()
		if !s.Vision().Visible().At(x, y) {
			t.Fatalf("Avatar cell (%d,%d) not visible after %q", x, y, key)
		}
	}
}

func TestReplayReproducesSession(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed * 31))
		original := newSession(t, seed)
		for _, key := range randomKeys(rng, 400) {
			original.Apply(key)
		}

		file := original.SaveFile()
		if !strings.HasSuffix(file.History, quitMarker) {
			t.Fatalf("Expected history to end with %q, got %q", quitMarker, file.History)
		}

		replayed, err := Replay(context.Background(), testConfig(file.Seed), file.History)
		if err != nil {
			t.Fatalf("Replay failed: %v", err)
		}

		ox, oy := original.Avatar().Position()
		rx, ry := replayed.Avatar().Position()
		if ox != rx || oy != ry {
			t.Errorf("seed %d: avatar at (%d,%d), replay at (%d,%d)", seed, ox, oy, rx, ry)
		}
		if original.Coins().Collected() != replayed.Coins().Collected() {
			t.Errorf("seed %d: collected %d, replay %d",
				seed, original.Coins().Collected(), replayed.Coins().Collected())
		}
		if !original.Grid().Equal(replayed.Grid()) {
			t.Errorf("seed %d: grids differ after replay", seed)
		}
		if original.Vision().Enabled() != replayed.Vision().Enabled() {
			t.Errorf("seed %d: line of sight state differs after replay", seed)
		}
	}
}

func TestSessionWon(t *testing.T) {
	s := newSession(t, 11)
	if s.Coins().Placed() == 0 {
		t.Skip("seed produced no coins")
	}

	for i := 0; i < s.Coins().Placed(); i++ {
		s.Coins().Collect()
	}
	if s.State() != StateWon {
		t.Errorf("Expected won state, got %s", s.State())
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		key  rune
		want Action
		ok   bool
	}{
		{'w', ActionUp, true},
		{'S', ActionDown, true},
		{'a', ActionLeft, true},
		{'D', ActionRight, true},
		{'l', ActionToggleSight, true},
		{':', 0, false},
		{'q', 0, false},
		{'Q', 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAction(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAction(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
