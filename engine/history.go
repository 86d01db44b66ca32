package engine

import (
	"hexfront/game"
	"hexfront/hexgrid"
)

// MoveRecord is one accepted placement in a session's append-only move log.
type MoveRecord struct {
	Player           game.Player
	Coord            hexgrid.Coord
	LineCaptures     int
	SurroundCaptures int
	Batches          int
}
