// Package world provides dungeon generation and map management.
package world

// Tile represents the kind of a single map cell.
type Tile uint8

const (
	// TileNothing is empty space outside rooms and corridors.
	TileNothing Tile = iota
	// TileFloor is a walkable floor tile.
	TileFloor
	// TileWall is an impassable, opaque wall tile.
	TileWall
	// TileCoin is a floor tile holding a collectible coin.
	TileCoin
	// TileAvatar marks the explorer's current cell.
	TileAvatar
)

// IsPassable returns true if the avatar can step onto the tile.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// IsOpaque returns true if the tile blocks line of sight.
func (t Tile) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '·'
	case TileWall:
		return '#'
	case TileCoin:
		return '$'
	case TileAvatar:
		return '@'
	default:
		return ' '
	}
}

// String returns a human-readable description of the tile.
func (t Tile) String() string {
	switch t {
	case TileNothing:
		return "nothing"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileCoin:
		return "coin"
	case TileAvatar:
		return "you"
	default:
		return "unknown"
	}
}
