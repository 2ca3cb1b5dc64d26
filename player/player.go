package player

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/searcher"
)

// Player produces one legal move for its side on demand. The driver applies
// the move to the authoritative board; players must not mutate it.
type Player interface {
	Side() game.Side
	FindMove(b *game.Board) (int, metrics.SearchMetric, error)
}

// AIPlayer chooses moves with the minimax searcher.
type AIPlayer struct {
	side     game.Side
	searcher *searcher.Minimax
}

func NewAIPlayer(side game.Side, options ...searcher.Option) *AIPlayer {
	return &AIPlayer{
		side:     side,
		searcher: searcher.NewMinimax(options...),
	}
}

func (p *AIPlayer) Side() game.Side { return p.side }

func (p *AIPlayer) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	move, metric := p.searcher.FindMove(b, p.side)
	return move, metric, nil
}
