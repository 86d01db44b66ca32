package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexfront/hexgrid"
)

func mustPlace(t *testing.T, b *Board, q, r int, p Player) {
	t.Helper()
	require.NoError(t, b.Place(hexgrid.Coord{Q: q, R: r}, p))
}

func TestLineCaptures(t *testing.T) {
	t.Run("flips a bracketed run", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, White)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 3, 0, White)

		got := LineCaptures(b, hexgrid.Coord{Q: 3, R: 0}, White)
		require.ElementsMatch(t, []hexgrid.Coord{{Q: 1, R: 0}, {Q: 2, R: 0}}, got)
	})

	t.Run("a run ending on an empty cell captures nothing", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 0, 0, White)

		require.Empty(t, LineCaptures(b, hexgrid.Coord{Q: 0, R: 0}, White))
	})

	t.Run("a run ending on the board edge captures nothing", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 6, 0, Black)
		mustPlace(t, b, 7, 0, Black)
		mustPlace(t, b, 5, 0, White)

		require.Empty(t, LineCaptures(b, hexgrid.Coord{Q: 5, R: 0}, White))
	})

	t.Run("an adjacent friendly tile contributes nothing", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 1, 0, White)
		mustPlace(t, b, 0, 0, White)

		require.Empty(t, LineCaptures(b, hexgrid.Coord{Q: 0, R: 0}, White))
	})

	t.Run("directions are scanned independently", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		// Bracketed run to the east, open run to the south-east
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, White)
		mustPlace(t, b, 0, 1, Black)
		mustPlace(t, b, 0, 0, White)

		got := LineCaptures(b, hexgrid.Coord{Q: 0, R: 0}, White)
		require.Equal(t, []hexgrid.Coord{{Q: 1, R: 0}}, got)
	})
}

func TestSurroundCaptures(t *testing.T) {
	t.Run("captures a surrounded tile at rank 1", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 0, -1, White)
		mustPlace(t, b, 0, 1, White)

		got := SurroundCaptures(b, White)
		require.Equal(t, map[hexgrid.Coord]int{{Q: 0, R: 0}: 1}, got)
	})

	t.Run("ranks straight runs outward from the surrounded tile", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 0, -1, White)
		mustPlace(t, b, 0, 1, White)

		got := SurroundCaptures(b, White)
		require.Equal(t, map[hexgrid.Coord]int{
			{Q: 0, R: 0}: 1,
			{Q: 1, R: 0}: 2,
			{Q: 2, R: 0}: 3,
		}, got)
	})

	t.Run("ranks restart at 2 for every direction", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, -1, 0, Black)
		mustPlace(t, b, 0, -1, White)
		mustPlace(t, b, 0, 1, White)

		got := SurroundCaptures(b, White)
		require.Equal(t, map[hexgrid.Coord]int{
			{Q: 0, R: 0}:  1,
			{Q: 1, R: 0}:  2,
			{Q: 2, R: 0}:  3,
			{Q: -1, R: 0}: 2,
		}, got)
	})

	t.Run("the first writer keeps its rank when runs collide", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		// Both ends of the Black run are surrounded; board order reaches
		// (0,0) first, so its outward ranks win everywhere.
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 3, 0, Black)
		mustPlace(t, b, 0, -1, White)
		mustPlace(t, b, 0, 1, White)
		mustPlace(t, b, 3, -1, White)
		mustPlace(t, b, 3, 1, White)

		got := SurroundCaptures(b, White)
		require.Equal(t, map[hexgrid.Coord]int{
			{Q: 0, R: 0}: 1,
			{Q: 1, R: 0}: 2,
			{Q: 2, R: 0}: 3,
			{Q: 3, R: 0}: 4,
		}, got)
	})

	t.Run("an unsurrounded tile stays put", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 0, -1, White)

		require.Empty(t, SurroundCaptures(b, White))
	})
}

func TestMergeCaptures(t *testing.T) {
	t.Run("line captures win rank ties", func(t *testing.T) {
		line := []hexgrid.Coord{{Q: 1, R: 0}}
		surround := map[hexgrid.Coord]int{
			{Q: 1, R: 0}: 2,
			{Q: 2, R: 0}: 3,
		}

		merged := MergeCaptures(line, surround)
		require.Equal(t, map[hexgrid.Coord]int{
			{Q: 1, R: 0}: 1,
			{Q: 2, R: 0}: 3,
		}, merged)
	})

	t.Run("keeps at most one entry per coordinate", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		// White bracket plus a full surround hit the same three cells
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 3, 0, White)
		mustPlace(t, b, 0, -1, White)
		mustPlace(t, b, 0, 1, White)
		mustPlace(t, b, -1, 0, White)

		line := LineCaptures(b, hexgrid.Coord{Q: -1, R: 0}, White)
		surround := SurroundCaptures(b, White)
		require.Contains(t, line, hexgrid.Coord{Q: 0, R: 0})
		require.Contains(t, surround, hexgrid.Coord{Q: 0, R: 0})

		merged := MergeCaptures(line, surround)
		require.Len(t, merged, 3)
		// Surround would rank (1,0) and (2,0) at 2 and 3; the line entries win
		require.Equal(t, 1, merged[hexgrid.Coord{Q: 1, R: 0}])
		require.Equal(t, 1, merged[hexgrid.Coord{Q: 2, R: 0}])
	})
}

func TestBatchCaptures(t *testing.T) {
	t.Run("groups by ascending rank with sorted cells", func(t *testing.T) {
		set := map[hexgrid.Coord]int{
			{Q: 2, R: 0}:  2,
			{Q: 0, R: 0}:  1,
			{Q: -1, R: 0}: 2,
		}

		batches := BatchCaptures(set)
		require.Equal(t, []CaptureBatch{
			{Rank: 1, Cells: []hexgrid.Coord{{Q: 0, R: 0}}},
			{Rank: 2, Cells: []hexgrid.Coord{{Q: -1, R: 0}, {Q: 2, R: 0}}},
		}, batches)
	})

	t.Run("empty set yields no batches", func(t *testing.T) {
		require.Nil(t, BatchCaptures(nil))
		require.Nil(t, BatchCaptures(map[hexgrid.Coord]int{}))
	})
}

func TestResolveCaptures(t *testing.T) {
	t.Run("a closed bracket produces one immediate batch", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, White)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 3, 0, White)

		batches := ResolveCaptures(b, hexgrid.Coord{Q: 3, R: 0}, White)
		require.Equal(t, []CaptureBatch{
			{Rank: 1, Cells: []hexgrid.Coord{{Q: 1, R: 0}, {Q: 2, R: 0}}},
		}, batches)
	})

	t.Run("surround runs reveal one step per batch", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, Black)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)
		mustPlace(t, b, 0, -1, White)
		mustPlace(t, b, 0, 1, White)

		batches := ResolveCaptures(b, hexgrid.Coord{Q: 0, R: 1}, White)
		require.Equal(t, []CaptureBatch{
			{Rank: 1, Cells: []hexgrid.Coord{{Q: 0, R: 0}}},
			{Rank: 2, Cells: []hexgrid.Coord{{Q: 1, R: 0}}},
			{Rank: 3, Cells: []hexgrid.Coord{{Q: 2, R: 0}}},
		}, batches)
	})

	t.Run("a placement elsewhere still captures a fully ringed tile", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, Black)
		for _, d := range hexgrid.Directions {
			mustPlace(t, b, d.Q, d.R, White)
		}
		mustPlace(t, b, 5, 0, White)

		batches := ResolveCaptures(b, hexgrid.Coord{Q: 5, R: 0}, White)
		require.Equal(t, []CaptureBatch{
			{Rank: 1, Cells: []hexgrid.Coord{{Q: 0, R: 0}}},
		}, batches)
	})
}

func TestPreviewCaptures(t *testing.T) {
	t.Run("reports batches without touching the board", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, White)
		mustPlace(t, b, 1, 0, Black)
		mustPlace(t, b, 2, 0, Black)

		batches, err := PreviewCaptures(b, hexgrid.Coord{Q: 3, R: 0}, White)
		require.NoError(t, err)
		require.Equal(t, []CaptureBatch{
			{Rank: 1, Cells: []hexgrid.Coord{{Q: 1, R: 0}, {Q: 2, R: 0}}},
		}, batches)

		_, occupied := b.Occupant(hexgrid.Coord{Q: 3, R: 0})
		require.False(t, occupied)
		require.Equal(t, 19, b.Supply(White))
		owner, _ := b.Occupant(hexgrid.Coord{Q: 1, R: 0})
		require.Equal(t, Black, owner)
	})

	t.Run("propagates placement rejections", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		mustPlace(t, b, 0, 0, White)

		_, err := PreviewCaptures(b, hexgrid.Coord{Q: 0, R: 0}, Black)
		require.ErrorIs(t, err, ErrCellOccupied)
	})
}
