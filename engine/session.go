package engine

import (
	"hexfront/game"
	"hexfront/hexgrid"

	"github.com/rs/zerolog/log"
)

type phase int

const (
	awaitingPlacement phase = iota
	stagingCaptures
	gameOver
)

// Session is a single game between two players, driven by one caller at a
// time. Every operation runs to completion before the next is accepted; the
// Session does no background work and is not safe for concurrent use.
type Session struct {
	board   *game.Board
	current game.Player
	phase   phase
	staged  []game.CaptureBatch
	applied int
	outcome game.Outcome
	history []MoveRecord
}

var _ Engine = (*Session)(nil)

// NewSession starts a fresh game under cfg. White moves first.
func NewSession(cfg game.Config) *Session {
	return &Session{
		board:   game.NewBoard(cfg),
		current: game.White,
	}
}

func NewDefaultSession() *Session {
	return NewSession(game.DefaultConfig())
}

// StepResult reports where the game stands after a batch confirmation. While
// batches remain only BatchesLeft is set; the last confirmation fills either
// NextPlayer or GameOver plus Outcome.
type StepResult struct {
	BatchesLeft int
	NextPlayer  game.Player
	GameOver    bool
	Outcome     game.Outcome
}

func (s *Session) RequestPlacement(c hexgrid.Coord) ([]game.CaptureBatch, error) {
	player := s.current
	switch s.phase {
	case gameOver:
		return nil, &game.PlacementError{Kind: game.ErrGameAlreadyOver, Coord: c, Player: player}
	case stagingCaptures:
		return nil, &game.PlacementError{Kind: game.ErrCapturesInProgress, Coord: c, Player: player}
	}

	if err := s.board.Place(c, player); err != nil {
		log.Debug().Msgf("rejected placement by %s at (%d,%d): %v", player, c.Q, c.R, err)
		return nil, err
	}

	// Both rules read the board as it stands right after the placement;
	// flips are deferred to the staged batches.
	line := game.LineCaptures(s.board, c, player)
	surround := game.SurroundCaptures(s.board, player)
	batches := game.BatchCaptures(game.MergeCaptures(line, surround))

	s.history = append(s.history, MoveRecord{
		Player:           player,
		Coord:            c,
		LineCaptures:     len(line),
		SurroundCaptures: len(surround),
		Batches:          len(batches),
	})

	log.Debug().Msgf("%s placed at (%d,%d): %d line captures, %d surround captures, %d batches",
		player, c.Q, c.R, len(line), len(surround), len(batches))

	if len(batches) == 0 {
		s.advanceTurn()
		return nil, nil
	}

	s.staged = batches
	s.applied = 0
	s.phase = stagingCaptures
	return batches, nil
}

func (s *Session) ConfirmBatchApplied(index int) (StepResult, error) {
	if s.phase != stagingCaptures || index != s.applied {
		return StepResult{}, &game.BatchError{Kind: game.ErrInvalidBatchIndex, Index: index}
	}

	batch := s.staged[index]
	s.board.ApplyCaptures(batch.Cells, s.current)
	s.applied++

	log.Info().Msgf("%s captured %d cells at rank %d", s.current, len(batch.Cells), batch.Rank)

	if s.applied < len(s.staged) {
		return StepResult{BatchesLeft: len(s.staged) - s.applied}, nil
	}

	s.staged = nil
	s.applied = 0
	return s.advanceTurn(), nil
}

// advanceTurn runs the end-of-move evaluation: game over once both supplies
// are spent, otherwise the other player is up.
func (s *Session) advanceTurn() StepResult {
	if s.board.SuppliesExhausted() {
		s.phase = gameOver
		s.outcome = game.ComputeOutcome(s.board)
		log.Info().Msgf("game over: White %d, Black %d, winner %s",
			s.outcome.WhiteTiles, s.outcome.BlackTiles, s.outcome.Winner)
		return StepResult{GameOver: true, Outcome: s.outcome}
	}

	s.current = s.current.Opponent()
	s.phase = awaitingPlacement
	return StepResult{NextPlayer: s.current}
}

func (s *Session) CurrentPlayer() game.Player { return s.current }

func (s *Session) RemainingSupply(p game.Player) int { return s.board.Supply(p) }

func (s *Session) TileCounts() map[game.Player]int { return s.board.TileCounts() }

func (s *Session) IsGameOver() bool { return s.phase == gameOver }

// Outcome returns the final scoring once the game is over.
func (s *Session) Outcome() (game.Outcome, bool) {
	if s.phase != gameOver {
		return game.Outcome{}, false
	}
	return s.outcome, true
}

func (s *Session) AllValidCoordinates() []hexgrid.Coord { return s.board.AllCoords() }

// ZoneOfControl is a read-only snapshot for hover and preview highlighting.
func (s *Session) ZoneOfControl(p game.Player) map[hexgrid.Coord]struct{} {
	return s.board.ZoneOfControl(p)
}

// LegalPlacements lists where the current player may place right now. It is
// empty while captures are staged and after the game ends.
func (s *Session) LegalPlacements() []hexgrid.Coord {
	if s.phase != awaitingPlacement {
		return nil
	}
	return s.board.LegalPlacements(s.current)
}

// PendingBatches returns the staged batches not yet confirmed, in reveal
// order.
func (s *Session) PendingBatches() []game.CaptureBatch {
	return s.staged[s.applied:]
}

// History returns the accepted placements so far, oldest first.
func (s *Session) History() []MoveRecord {
	return s.history
}
