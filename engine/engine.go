package engine

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

// Engine runs one game to completion.
type Engine interface {
	// Run drives the game till there is a winner or the move cap is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
