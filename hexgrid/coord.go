// Package hexgrid provides axial hex coordinates, adjacency, and the
// pixel mapping for a flat-top hex layout.
package hexgrid

// Coord is an axial hex coordinate (q, r). The third cube component is
// derived: s = -q-r.
type Coord struct {
	Q, R int
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.Q + d.Q, c.R + d.R}
}

// Directions defines the 6 neighbor offsets in axial coordinates, in
// canonical order: E, NE, NW, W, SW, SE.
var Directions = [6]Coord{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// Opposite returns the index of the direction opposite to Directions[i].
func Opposite(i int) int {
	return (i + 3) % 6
}

// Valid reports whether c lies inside a grid of the given radius:
// |q| < radius, |r| < radius and |s| < radius.
func Valid(c Coord, radius int) bool {
	return abs(c.Q) < radius && abs(c.R) < radius && abs(c.S()) < radius
}

// Neighbors returns the neighbors of c that lie inside the grid, in
// direction order.
func Neighbors(c Coord, radius int) []Coord {
	result := make([]Coord, 0, 6)
	for _, d := range Directions {
		n := c.Add(d)
		if Valid(n, radius) {
			result = append(result, n)
		}
	}
	return result
}

// RawNeighbors returns all 6 neighbors of c, including off-board ones.
// Callers doing no-escape tests treat an off-board neighbor as satisfied
// rather than filtering it away.
func RawNeighbors(c Coord) [6]Coord {
	var result [6]Coord
	for i, d := range Directions {
		result[i] = c.Add(d)
	}
	return result
}

// Distance returns the hex distance between a and b: the max of the three
// absolute cube component deltas.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())

	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
