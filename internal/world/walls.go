package world

// PaintWalls surrounds every floor tile with walls and returns how many were added.
// Neighbours are read from the grid as it was before the pass and walls are written
// to a snapshot that replaces the grid at the end, so new walls never feed back into
// the same pass.
func PaintWalls(grid *Grid) int {
	snapshot := grid.Clone()
	added := 0

	grid.ForEach(func(x, y int, t Tile) {
		if t != TileFloor {
			return
		}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !grid.InBounds(nx, ny) {
					continue
				}
				if grid.At(nx, ny) == TileNothing && snapshot.At(nx, ny) != TileWall {
					snapshot.Set(nx, ny, TileWall)
					added++
				}
			}
		}
	})

	grid.CopyFrom(snapshot)
	return added
}
