package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

// HexToPixel returns the screen position of the center of cell c for a
// flat-top layout with the given cell size.
func HexToPixel(c Coord, size float64) (x, y float64) {
	x = size * 1.5 * float64(c.Q)
	y = size * (sqrt3/2*float64(c.Q) + sqrt3*float64(c.R))
	return x, y
}

// PixelToHex maps a screen position back to the cell containing it. The
// fractional axial coordinates are rounded with Round, so any point maps
// to its nearest cell; validity against a grid radius is the caller's
// concern.
func PixelToHex(x, y, size float64) Coord {
	qf := (2.0 / 3.0) * x / size
	rf := (-1.0/3.0*x + sqrt3/3.0*y) / size
	return Round(qf, rf)
}

// Round rounds fractional axial coordinates to the nearest cell. The cube
// component with the largest rounding error is recomputed from the other
// two, so the result always satisfies q+r+s == 0. Integer inputs come back
// unchanged.
func Round(qf, rf float64) Coord {
	sf := -qf - rf

	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)

	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)

	if dq >= dr && dq >= ds {
		q = -r - s
	} else if dr >= ds {
		r = -q - s
	}
	return Coord{int(q), int(r)}
}
