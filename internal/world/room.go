package world

// Room represents a rectangular floor region in the dungeon.
type Room struct {
	X, Y          int // Lower-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the integer center of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps returns true if the rooms come closer than padding cells on both axes.
func (r Room) Overlaps(other Room, padding int) bool {
	return r.X+r.Width+padding > other.X &&
		other.X+other.Width+padding > r.X &&
		r.Y+r.Height+padding > other.Y &&
		other.Y+other.Height+padding > r.Y
}

// WithinMargin returns true if the room lies inside [margin, dimension-margin) on both axes.
func (r Room) WithinMargin(width, height, margin int) bool {
	return r.X >= margin &&
		r.Y >= margin &&
		r.X+r.Width <= width-margin &&
		r.Y+r.Height <= height-margin
}

// ManhattanDistance returns the Manhattan distance between the room centers.
func (r Room) ManhattanDistance(other Room) int {
	ax, ay := r.Center()
	bx, by := other.Center()
	return abs(ax-bx) + abs(ay-by)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
