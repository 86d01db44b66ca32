package engine

import (
	"hexfront/game"
	"hexfront/hexgrid"
)

// Engine is the rules surface a hosting presentation layer drives. The engine
// owns rules and board state; the host owns rendering, input, and the pacing
// between capture-batch reveals.
type Engine interface {
	// RequestPlacement plays the current player's tile at c and stages the
	// resulting capture batches. An empty result means there was nothing to
	// capture and the turn advanced immediately.
	RequestPlacement(c hexgrid.Coord) ([]game.CaptureBatch, error)
	// ConfirmBatchApplied acknowledges that the host revealed the staged
	// batch at index, flipping its cells on the board. Batches confirm in
	// order; the last confirmation switches the turn or ends the game.
	ConfirmBatchApplied(index int) (StepResult, error)

	CurrentPlayer() game.Player
	RemainingSupply(p game.Player) int
	TileCounts() map[game.Player]int
	IsGameOver() bool
	Outcome() (game.Outcome, bool)
	AllValidCoordinates() []hexgrid.Coord
	ZoneOfControl(p game.Player) map[hexgrid.Coord]struct{}
	LegalPlacements() []hexgrid.Coord
	PendingBatches() []game.CaptureBatch
	History() []MoveRecord
}
