package metrics

import (
	"time"

	"hexfront/game"
)

// GameRecord summarizes one self-play game.
type GameRecord struct {
	ID               int
	Winner           game.Player // NoPlayer on a tie
	WhiteTiles       int
	BlackTiles       int
	Moves            int
	LineCaptures     int
	SurroundCaptures int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// MoveRecord is one placement inside a game.
type MoveRecord struct {
	Game             int // GameRecord.ID
	Step             int
	Player           game.Player
	Q                int
	R                int
	LineCaptures     int
	SurroundCaptures int
	Batches          int
}
