package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexfront/engine"
	"hexfront/experiments/metrics"
	"hexfront/meta"
)

// DefaultGames is the number of self-play games per balance run.
const DefaultGames = 200

// RunBalance plays random self-play games and stores per-game and per-move
// records for offline analysis: line vs surround capture rates, first-player
// advantage, tie rate. A zero seed seeds from the clock.
func RunBalance(games int, seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	log.Info().Msgf("starting balance experiment with %d games (seed %d)...", games, seed)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i := 0; i < games; i++ {
		record, moves := playRandomGame(i+1, rng)
		gameRecords = append(gameRecords, record)
		moveRecords = append(moveRecords, moves...)

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, record.Winner)
	}

	log.Info().Msg("completed balance experiment")

	// Store experiment results
	writer, err := metrics.NewWriter("balance")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// playRandomGame drives one session with uniformly random legal placements,
// confirming every staged batch in order, until the game ends.
func playRandomGame(id int, rng *rand.Rand) (metrics.GameRecord, []metrics.MoveRecord) {
	s := engine.NewDefaultSession()
	start := time.Now()

	moves := []metrics.MoveRecord{}
	step := 0
	for !s.IsGameOver() && step < meta.MAX_MOVES {
		open := s.LegalPlacements()
		if len(open) == 0 {
			panic("no legal placements with the game still running")
		}
		c := open[rng.Intn(len(open))]
		player := s.CurrentPlayer()

		batches, err := s.RequestPlacement(c)
		if err != nil {
			panic(fmt.Sprintf("random placement rejected: %v", err))
		}
		for bi := range batches {
			if _, err := s.ConfirmBatchApplied(bi); err != nil {
				panic(fmt.Sprintf("batch confirmation rejected: %v", err))
			}
		}

		step++
		last := s.History()[step-1]
		moves = append(moves, metrics.MoveRecord{
			Game:             id,
			Step:             step,
			Player:           player,
			Q:                c.Q,
			R:                c.R,
			LineCaptures:     last.LineCaptures,
			SurroundCaptures: last.SurroundCaptures,
			Batches:          last.Batches,
		})
	}

	end := time.Now()
	outcome, _ := s.Outcome()

	record := metrics.GameRecord{
		ID:         id,
		Winner:     outcome.Winner,
		WhiteTiles: outcome.WhiteTiles,
		BlackTiles: outcome.BlackTiles,
		Moves:      step,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}
	for _, m := range moves {
		record.LineCaptures += m.LineCaptures
		record.SurroundCaptures += m.SurroundCaptures
	}
	return record, moves
}
