package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/meta"
	"chainreaction/player"
	"chainreaction/utils"
)

// LocalEngine owns the authoritative board and drives two players over it,
// in process. Player moves are validated before being applied; the engine
// alone mutates the board.
type LocalEngine struct {
	board   *game.Board
	players []player.Player
	sides   []game.Side
}

// NewLocalEngine builds an engine over board. One player per color, Red
// and Blue in any order.
func NewLocalEngine(board *game.Board, players ...player.Player) *LocalEngine {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	sides := []game.Side{players[0].Side(), players[1].Side()}
	if utils.FindIndex(sides, game.Red) < 0 || utils.FindIndex(sides, game.Blue) < 0 {
		panic("need one Red player and one Blue player")
	}

	return &LocalEngine{
		board:   board,
		players: players,
		sides:   sides,
	}
}

// View returns a read-only view of the authoritative board, for rendering
// and spectating.
func (e *LocalEngine) View() *game.ConstBoard { return e.board.Readonly() }

// Run executes the game loop until a winner is found or the move cap is
// reached.
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	// Turn order is enforced here, alternating strictly from whoever the
	// board says opens; WhoseMove is advisory once play has begun.
	turn := e.board.WhoseMove()

	gameMetric := metrics.GameMetric{
		StartingPlayer: turn,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Stringer("player", turn).Msg("game starting")

	step := 0
	for e.board.Winner() == game.Neutral && step < meta.MaxMoves {
		mover := turn
		p := e.players[utils.FindIndex(e.sides, mover)]

		n, metric, err := p.FindMove(e.board)
		if err != nil {
			return game.Neutral, gameMetric, moveMetrics,
				fmt.Errorf("%s could not move: %w", mover, err)
		}
		if !e.board.ExistsSq(n) || !e.board.IsLegalSq(mover, n) {
			return game.Neutral, gameMetric, moveMetrics,
				fmt.Errorf("%s played illegal square %d", mover, n)
		}

		e.board.AddSpot(mover, e.board.Row(n), e.board.Col(n))
		turn = turn.Opposite()
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover,
			SearchMetric: metric,
		})

		log.Info().
			Int("step", step).
			Stringer("player", mover).
			Str("move", e.board.MoveString(n)).
			Int("spots", e.board.NumPieces()).
			Msg("move played")
	}

	winner := e.board.Winner()
	now := time.Now()
	gameMetric.Winner = winner
	gameMetric.EndTime = now
	gameMetric.Duration = now.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	if winner != game.Neutral {
		log.Info().Stringer("winner", winner).Int("moves", step).Msg("game over")
	} else {
		log.Warn().Int("moves", step).Msg("stopped at move cap with no winner")
	}

	return winner, gameMetric, moveMetrics, nil
}
