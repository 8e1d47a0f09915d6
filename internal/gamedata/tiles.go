package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/coinrush/internal/world"
)

// TileDef is the JSON-serializable look of one tile kind.
type TileDef struct {
	Tile        string `json:"tile"` // matches world.Tile.String()
	Color       string `json:"color"`
	Bold        bool   `json:"bold,omitempty"`
	Description string `json:"description"`
}

// Palette maps tiles to their screen style and hover description.
type Palette struct {
	styles       map[world.Tile]tcell.Style
	descriptions map[world.Tile]string
}

// tileKinds are the tiles a palette may describe.
var tileKinds = []world.Tile{world.TileFloor, world.TileWall, world.TileCoin, world.TileAvatar}

// NewPalette builds a palette from tile definitions. Unknown tile names and bad
// colors are errors; tiles without a definition fall back to the default style.
func NewPalette(defs []TileDef) (*Palette, error) {
	byName := make(map[string]world.Tile, len(tileKinds))
	for _, t := range tileKinds {
		byName[t.String()] = t
	}

	p := &Palette{
		styles:       make(map[world.Tile]tcell.Style, len(defs)),
		descriptions: make(map[world.Tile]string, len(defs)),
	}
	for _, def := range defs {
		tile, ok := byName[def.Tile]
		if !ok {
			return nil, fmt.Errorf("unknown tile %q", def.Tile)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", def.Tile, err)
		}
		p.styles[tile] = tcell.StyleDefault.Foreground(color).Bold(def.Bold)
		p.descriptions[tile] = def.Description
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded tiles.json.
func LoadPalette() (*Palette, error) {
	content, err := dataFS.ReadFile("tiles.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tiles.json: %w", err)
	}

	var defs []TileDef
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("failed to parse tiles.json: %w", err)
	}
	return NewPalette(defs)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Style returns the screen style for tile.
func (p *Palette) Style(tile world.Tile) tcell.Style {
	if s, ok := p.styles[tile]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Describe returns the hover text for tile, or its name when undefined.
func (p *Palette) Describe(tile world.Tile) string {
	if d, ok := p.descriptions[tile]; ok && d != "" {
		return d
	}
	return tile.String()
}
