package player

import (
	"golang.org/x/exp/rand"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

// RandomPlayer picks uniformly among its legal moves. It serves as the
// weakest experiment baseline.
type RandomPlayer struct {
	side game.Side
	rng  *rand.Rand
}

func NewRandomPlayer(side game.Side, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Side() game.Side { return p.side }

func (p *RandomPlayer) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	moves := b.LegalMoves(p.side)
	return moves[p.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
