package game

import (
	"fmt"

	"hexfront/hexgrid"
)

// Board holds every placed tile and the per-player tile supplies. Cells absent
// from the map are empty. The board is mutated only through Place and
// ApplyCaptures; everything else is a read.
type Board struct {
	cfg    Config
	cells  map[hexgrid.Coord]Player
	supply map[Player]int
	coords []hexgrid.Coord // every valid coordinate, fixed scan order
}

// NewBoard returns an empty board with full supplies. The valid-coordinate
// sequence is enumerated once here and reused for every scan.
func NewBoard(cfg Config) *Board {
	cfg.validate()

	var coords []hexgrid.Coord
	for q := -cfg.Radius + 1; q < cfg.Radius; q++ {
		for r := -cfg.Radius + 1; r < cfg.Radius; r++ {
			c := hexgrid.Coord{Q: q, R: r}
			if hexgrid.Valid(c, cfg.Radius) {
				coords = append(coords, c)
			}
		}
	}

	return &Board{
		cfg:   cfg,
		cells: make(map[hexgrid.Coord]Player),
		supply: map[Player]int{
			White: cfg.TilePool,
			Black: cfg.TilePool,
		},
		coords: coords,
	}
}

func (b *Board) Config() Config { return b.cfg }

// Valid reports whether c lies on this board.
func (b *Board) Valid(c hexgrid.Coord) bool {
	return hexgrid.Valid(c, b.cfg.Radius)
}

// Neighbors returns c's on-board neighbors.
func (b *Board) Neighbors(c hexgrid.Coord) []hexgrid.Coord {
	return hexgrid.Neighbors(c, b.cfg.Radius)
}

// Occupant returns the player owning the tile at c, or false for an empty
// (or off-board) cell.
func (b *Board) Occupant(c hexgrid.Coord) (Player, bool) {
	p, ok := b.cells[c]
	return p, ok
}

// Place records a tile for p at c and decrements p's supply. It rejects an
// off-board coordinate, an occupied cell, and an exhausted supply, leaving
// the board untouched.
func (b *Board) Place(c hexgrid.Coord, p Player) error {
	if !b.Valid(c) {
		return &PlacementError{Kind: ErrInvalidCoordinate, Coord: c, Player: p}
	}
	if _, occupied := b.cells[c]; occupied {
		return &PlacementError{Kind: ErrCellOccupied, Coord: c, Player: p}
	}
	if b.supply[p] <= 0 {
		return &PlacementError{Kind: ErrSupplyExhausted, Coord: c, Player: p}
	}
	b.cells[c] = p
	b.supply[p]--
	return nil
}

// ApplyCaptures flips every cell in cells to p. Captures never touch the
// supplies. Each cell must hold an opponent tile; anything else means the
// batch no longer matches the board it was computed from.
func (b *Board) ApplyCaptures(cells []hexgrid.Coord, p Player) {
	for _, c := range cells {
		owner, ok := b.cells[c]
		if !ok || owner == p {
			panic(fmt.Sprintf("capture batch out of sync with board at (%d,%d)", c.Q, c.R))
		}
		b.cells[c] = p
	}
}

// AllCoords returns a fresh copy of the valid-coordinate sequence in scan
// order.
func (b *Board) AllCoords() []hexgrid.Coord {
	coords := make([]hexgrid.Coord, len(b.coords))
	copy(coords, b.coords)
	return coords
}

// TileCounts counts the tiles on the board per player. Scoring reads this,
// not the remaining supplies.
func (b *Board) TileCounts() map[Player]int {
	counts := map[Player]int{White: 0, Black: 0}
	for _, p := range b.cells {
		counts[p]++
	}
	return counts
}

// Supply returns p's remaining tiles.
func (b *Board) Supply(p Player) int {
	return b.supply[p]
}

// SuppliesExhausted reports whether both players have placed their whole pool.
func (b *Board) SuppliesExhausted() bool {
	return b.supply[White] == 0 && b.supply[Black] == 0
}

// LegalPlacements returns every empty cell p could place on, in scan order.
// It is empty when p's supply is exhausted.
func (b *Board) LegalPlacements(p Player) []hexgrid.Coord {
	if b.supply[p] <= 0 {
		return nil
	}
	var open []hexgrid.Coord
	for _, c := range b.coords {
		if _, occupied := b.cells[c]; !occupied {
			open = append(open, c)
		}
	}
	return open
}

// Clone returns a deep copy sharing only the immutable coordinate sequence.
func (b *Board) Clone() *Board {
	cellsCopy := make(map[hexgrid.Coord]Player, len(b.cells))
	for c, p := range b.cells {
		cellsCopy[c] = p
	}
	supplyCopy := make(map[Player]int, len(b.supply))
	for p, n := range b.supply {
		supplyCopy[p] = n
	}
	return &Board{
		cfg:    b.cfg,
		cells:  cellsCopy,
		supply: supplyCopy,
		coords: b.coords,
	}
}
