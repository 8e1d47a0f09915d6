package world

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a fixed-size tile map. The origin is the bottom-left cell and y grows upward.
// Cells are stored row-major: index = y*width + x.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid filled with TileNothing.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y), or TileNothing when out of bounds.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileNothing
	}
	return g.tiles[y*g.width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.width+x] = t
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		tiles:  make([]Tile, len(g.tiles)),
	}
	copy(c.tiles, g.tiles)
	return c
}

// CopyFrom overwrites the grid with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.tiles, src.tiles)
}

// Equal reports whether both grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Center returns the grid center cell using integer division.
func (g *Grid) Center() Point {
	return Point{X: g.width / 2, Y: g.height / 2}
}

// ForEach calls fn for every cell, x outer and y inner.
func (g *Grid) ForEach(fn func(x, y int, t Tile)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}
