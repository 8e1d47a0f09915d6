package world

import "slices"

// Corridor records the pair of rooms joined by a carved hallway.
type Corridor struct {
	From, To int // Room indices, From < To
}

// edge is a candidate connection between two rooms.
type edge struct {
	a, b   int
	weight int
}

// ConnectRooms joins all rooms into a minimum spanning tree using Kruskal's algorithm
// and carves an L-shaped corridor for every selected edge. Edge weight is the Manhattan
// distance between room centers; equal weights keep their (i, j) enumeration order.
func ConnectRooms(grid *Grid, rooms []Room) []Corridor {
	if len(rooms) == 0 {
		return nil
	}

	ds := NewDisjointSet(len(rooms))
	corridors := make([]Corridor, 0, len(rooms)-1)

	for _, e := range sortedEdges(rooms) {
		if ds.AllConnected() {
			break
		}
		if ds.Connected(e.a, e.b) {
			continue
		}
		carveCorridor(grid, rooms[e.a], rooms[e.b])
		ds.Union(e.a, e.b)
		corridors = append(corridors, Corridor{From: e.a, To: e.b})
	}

	return corridors
}

// sortedEdges builds the complete graph over rooms ordered by ascending weight.
func sortedEdges(rooms []Room) []edge {
	edges := make([]edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, edge{a: i, b: j, weight: rooms[i].ManhattanDistance(rooms[j])})
		}
	}
	slices.SortStableFunc(edges, func(x, y edge) int {
		return x.weight - y.weight
	})
	return edges
}

// connectionPoint picks the perimeter cell of from that faces to.
func connectionPoint(from, to Room) Point {
	fromX, fromY := from.Center()
	toX, toY := to.Center()

	// Exit through a side wall when the horizontal gap dominates
	if abs(toX-fromX) > abs(toY-fromY) {
		x := from.X + from.Width - 1
		if toX < fromX {
			x = from.X
		}
		return Point{X: x, Y: fromY}
	}

	y := from.Y + from.Height - 1
	if toY < fromY {
		y = from.Y
	}
	return Point{X: fromX, Y: y}
}

// carveCorridor creates an L-shaped corridor between two rooms.
func carveCorridor(grid *Grid, a, b Room) {
	start := connectionPoint(a, b)
	end := connectionPoint(b, a)
	corner := Point{X: start.X, Y: end.Y}

	carveHorizontal(grid, start.X, corner.X, start.Y)
	carveVertical(grid, start.Y, corner.Y, corner.X)
	carveHorizontal(grid, corner.X, end.X, corner.Y)
}

// carveHorizontal carves floor along row y between x1 and x2 inclusive.
func carveHorizontal(grid *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		grid.Set(x, y, TileFloor)
	}
}

// carveVertical carves floor along column x between y1 and y2 inclusive.
func carveVertical(grid *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		grid.Set(x, y, TileFloor)
	}
}
