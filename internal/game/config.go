package game

import (
	"os"
	"time"

	"github.com/samdwyer/coinrush/internal/save"
	"github.com/samdwyer/coinrush/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. The same seed always yields the same world.
	Seed int64

	// World holds the generation constants.
	World world.Config

	// SavePath is where ":q" writes the save file.
	SavePath string
}

// NewConfig returns the default configuration with a time-based seed.
// COINRUSH_SAVE_FILE overrides the save path.
func NewConfig() Config {
	path := os.Getenv("COINRUSH_SAVE_FILE")
	if path == "" {
		path = save.DefaultPath
	}
	return Config{
		Seed:     time.Now().UnixNano(),
		World:    world.DefaultConfig(),
		SavePath: path,
	}
}

// WithSeed returns a copy of the config using seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	return c
}
