package game

// Outcome is the final scoring of a finished game, decided by on-board tile
// majority. Winner is NoPlayer on a tie.
type Outcome struct {
	Winner     Player
	WhiteTiles int
	BlackTiles int
}

// ComputeOutcome scores the board as it stands.
func ComputeOutcome(b *Board) Outcome {
	counts := b.TileCounts()
	out := Outcome{
		WhiteTiles: counts[White],
		BlackTiles: counts[Black],
	}
	switch {
	case out.WhiteTiles > out.BlackTiles:
		out.Winner = White
	case out.BlackTiles > out.WhiteTiles:
		out.Winner = Black
	}
	return out
}

// Tie reports whether neither player finished with a strict majority.
func (o Outcome) Tie() bool {
	return o.Winner == NoPlayer
}
