package game

import (
	"errors"
	"fmt"

	"hexfront/hexgrid"
)

// Rejection kinds. Every rejected operation wraps exactly one of these, so
// callers can branch with errors.Is. A rejection leaves all state unchanged.
var (
	ErrInvalidCoordinate  = errors.New("coordinate outside the grid")
	ErrCellOccupied       = errors.New("cell already occupied")
	ErrSupplyExhausted    = errors.New("tile supply exhausted")
	ErrGameAlreadyOver    = errors.New("game already over")
	ErrCapturesInProgress = errors.New("capture batches still staged")
	ErrInvalidBatchIndex  = errors.New("no staged batch at that index")
)

// PlacementError reports a rejected placement along with the offending
// coordinate and player.
type PlacementError struct {
	Kind   error
	Coord  hexgrid.Coord
	Player Player
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %s at (%d,%d): %v", e.Player, e.Coord.Q, e.Coord.R, e.Kind)
}

func (e *PlacementError) Unwrap() error { return e.Kind }

// BatchError reports a rejected capture-batch confirmation.
type BatchError struct {
	Kind  error
	Index int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("cannot confirm batch %d: %v", e.Index, e.Kind)
}

func (e *BatchError) Unwrap() error { return e.Kind }
