package searcher

import (
	"math"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/meta"
)

// Alpha-beta bounds. Not math.MaxInt: the bounds must survive negation.
const infinity = math.MaxInt32

type Option func(m *Minimax)

// Minimax chooses moves by depth-bounded minimax with alpha-beta pruning.
// Each search works on a private copy of the caller's board, applying and
// undoing candidate moves on that copy through the same mutation machinery
// live play uses; the authoritative board is never touched.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	side     game.Side
	found    int
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.SearchDepth,
		evaluate: game.EvaluateCornerMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the square number side should play on board b, plus the
// metrics of the search that chose it. The caller guarantees the game is
// not over and side has at least one legal move. Red maximizes and Blue
// minimizes the shared evaluation convention.
func (m *Minimax) FindMove(b *game.Board, side game.Side) (int, metrics.SearchMetric) {
	work := game.NewBoardFrom(b)
	m.side = side
	m.found = -1
	m.metrics.Start(m.depth)

	sense := 1
	if side == game.Blue {
		sense = -1
	}
	score := m.minMax(work, side, m.depth, true, sense, -infinity, infinity)
	m.metrics.SetScore(score)

	return m.found, m.metrics.Complete()
}

// minMax searches position b, with mover to play, to depth plies and
// returns its value. sense is +1 when the mover at this node maximizes
// and -1 when it minimizes; both flip together on recursion. saveMove is
// set only at the root, where each strictly better candidate is recorded
// as the chosen move. Every path through this function, including prune
// returns, leaves b exactly as it was on entry: each candidate move is
// undone immediately after its subtree is scored.
func (m *Minimax) minMax(b *game.Board, mover game.Side, depth int, saveMove bool, sense, alpha, beta int) int {
	m.metrics.AddNode()
	if depth == 0 || b.Winner() != game.Neutral {
		m.metrics.AddLeaf()
		return m.evaluate(b, m.side)
	}

	moves := b.LegalMoves(mover)

	if sense == 1 {
		bestSoFar := alpha
		for _, n := range moves {
			b.AddSpotSq(mover, n)
			score := m.minMax(b, mover.Opposite(), depth-1, false, -1, alpha, beta)
			b.Undo()
			if score > bestSoFar {
				bestSoFar = score
				if bestSoFar > alpha {
					alpha = bestSoFar
				}
				if saveMove {
					m.found = n
				}
				if alpha >= beta {
					m.metrics.AddPrune()
					return bestSoFar
				}
			}
		}
		return bestSoFar
	}

	bestSoFar := beta
	for _, n := range moves {
		b.AddSpotSq(mover, n)
		score := m.minMax(b, mover.Opposite(), depth-1, false, 1, alpha, beta)
		b.Undo()
		if score < bestSoFar {
			bestSoFar = score
			if bestSoFar < beta {
				beta = bestSoFar
			}
			if saveMove {
				m.found = n
			}
			if alpha >= beta {
				m.metrics.AddPrune()
				return bestSoFar
			}
		}
	}
	return bestSoFar
}
