package game

import "hexfront/hexgrid"

// ZoneOfControl returns the set of cells influenced by p's tiles: every tile
// influences its own cell plus its on-board neighbors. Recomputed from the
// board on every call, never cached.
func (b *Board) ZoneOfControl(p Player) map[hexgrid.Coord]struct{} {
	zoc := make(map[hexgrid.Coord]struct{})
	for c, owner := range b.cells {
		if owner != p {
			continue
		}
		zoc[c] = struct{}{}
		for _, n := range hexgrid.Neighbors(c, b.cfg.Radius) {
			zoc[n] = struct{}{}
		}
	}
	return zoc
}

// Surrounded reports whether every on-board neighbor of c lies in zoc.
// An off-board direction is not an escape, so a cell with no on-board
// neighbors is vacuously surrounded.
func (b *Board) Surrounded(c hexgrid.Coord, zoc map[hexgrid.Coord]struct{}) bool {
	for _, n := range hexgrid.RawNeighbors(c) {
		if !b.Valid(n) {
			continue
		}
		if _, held := zoc[n]; !held {
			return false
		}
	}
	return true
}
