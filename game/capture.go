package game

import (
	"sort"

	"hexfront/hexgrid"
)

// CaptureBatch groups the cells revealed together at one step of a capture
// sequence. Rank 1 holds the immediate captures; higher ranks spread outward
// one step at a time. The host applies batches in order at its own pace.
type CaptureBatch struct {
	Rank  int
	Cells []hexgrid.Coord
}

// LineCaptures scans outward from the placed tile in each of the 6 directions
// and collects the consecutive opponent tiles of each run. A run counts only
// when it ends on a tile owned by p; an empty cell or the board edge discards
// that direction. All line captures are immediate (rank 1).
func LineCaptures(b *Board, placed hexgrid.Coord, p Player) []hexgrid.Coord {
	var captured []hexgrid.Coord
	for _, d := range hexgrid.Directions {
		var run []hexgrid.Coord
		for cur := placed.Add(d); ; cur = cur.Add(d) {
			if !b.Valid(cur) {
				// Ran off the board before closing the bracket
				run = nil
				break
			}
			owner, occupied := b.Occupant(cur)
			if !occupied {
				run = nil
				break
			}
			if owner == p {
				break
			}
			run = append(run, cur)
		}
		captured = append(captured, run...)
	}
	return captured
}

// SurroundCaptures finds every opponent tile whose on-board neighbors all lie
// in p's zone of control. A surrounded tile is captured at rank 1; the
// straight runs of opponent tiles extending from it are captured at ranks
// 2, 3, … walking outward, each of the 6 directions independently. Tiles are
// scanned in board order, and a cell already captured by an earlier surround
// keeps its first rank.
func SurroundCaptures(b *Board, p Player) map[hexgrid.Coord]int {
	zoc := b.ZoneOfControl(p)
	opponent := p.Opponent()

	captured := make(map[hexgrid.Coord]int)
	for _, c := range b.coords {
		if owner, occupied := b.Occupant(c); !occupied || owner != opponent {
			continue
		}
		if !b.Surrounded(c, zoc) {
			continue
		}
		if _, seen := captured[c]; !seen {
			captured[c] = 1
		}
		for _, d := range hexgrid.Directions {
			rank := 2
			for cur := c.Add(d); b.Valid(cur); cur = cur.Add(d) {
				owner, occupied := b.Occupant(cur)
				if !occupied || owner != opponent {
					break
				}
				if _, seen := captured[cur]; !seen {
					captured[cur] = rank
				}
				rank++
			}
		}
	}
	return captured
}

// MergeCaptures combines the two rules into one capture set. Line captures
// are recorded first at rank 1; surround captures fill in only the cells not
// already present, so a cell hit by both rules keeps the line rank. The
// result holds at most one entry per coordinate.
func MergeCaptures(line []hexgrid.Coord, surround map[hexgrid.Coord]int) map[hexgrid.Coord]int {
	merged := make(map[hexgrid.Coord]int, len(line)+len(surround))
	for _, c := range line {
		merged[c] = 1
	}
	for c, rank := range surround {
		if _, seen := merged[c]; !seen {
			merged[c] = rank
		}
	}
	return merged
}

// BatchCaptures groups a capture set into reveal batches by ascending rank.
// Cells within a batch are in coordinate order for a stable reveal.
func BatchCaptures(set map[hexgrid.Coord]int) []CaptureBatch {
	if len(set) == 0 {
		return nil
	}

	byRank := make(map[int][]hexgrid.Coord)
	for c, rank := range set {
		byRank[rank] = append(byRank[rank], c)
	}

	ranks := make([]int, 0, len(byRank))
	for rank := range byRank {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	batches := make([]CaptureBatch, 0, len(ranks))
	for _, rank := range ranks {
		cells := byRank[rank]
		sort.Slice(cells, func(i, j int) bool {
			if cells[i].Q != cells[j].Q {
				return cells[i].Q < cells[j].Q
			}
			return cells[i].R < cells[j].R
		})
		batches = append(batches, CaptureBatch{Rank: rank, Cells: cells})
	}
	return batches
}

// ResolveCaptures computes the batched captures for a tile already placed on
// the board. Both rules read the same snapshot and resolution runs exactly
// once per placement, so a flip can never trigger further captures within the
// same move.
func ResolveCaptures(b *Board, placed hexgrid.Coord, p Player) []CaptureBatch {
	line := LineCaptures(b, placed, p)
	surround := SurroundCaptures(b, p)
	return BatchCaptures(MergeCaptures(line, surround))
}

// PreviewCaptures reports the batches a placement would stage, without
// touching the board. The placement itself is validated on a scratch copy,
// so a rejected coordinate returns the same error Place would.
func PreviewCaptures(b *Board, c hexgrid.Coord, p Player) ([]CaptureBatch, error) {
	scratch := b.Clone()
	if err := scratch.Place(c, p); err != nil {
		return nil, err
	}
	return ResolveCaptures(scratch, c, p), nil
}
