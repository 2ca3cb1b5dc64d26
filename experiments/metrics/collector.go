package metrics

import (
	"time"

	"chainreaction/game"
)

// SearchMetric describes one completed minimax search.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // positions visited, root included
	Leaves   int // static evaluations
	Prunes   int // alpha-beta cutoffs
	Score    int // minimax value of the root position
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player game.Side
	SearchMetric
}

// GameMetric summarizes one completed game.
type GameMetric struct {
	StartingPlayer game.Side
	Winner         game.Side
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates counters over one search at a time. Searches run
// sequentially on a single goroutine, so plain counters suffice.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	SetScore(score int)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
	score     int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	*c = collector{depth: depth, startTime: time.Now()}
}

func (c *collector) AddNode() { c.nodes++ }

func (c *collector) AddLeaf() { c.leaves++ }

func (c *collector) AddPrune() { c.prunes++ }

func (c *collector) SetScore(score int) { c.score = score }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Duration: time.Since(c.startTime),
		Nodes:    c.nodes,
		Leaves:   c.leaves,
		Prunes:   c.prunes,
		Score:    c.score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(depth int)        {}
func (c *dummyCollector) AddNode()               {}
func (c *dummyCollector) AddLeaf()               {}
func (c *dummyCollector) AddPrune()              {}
func (c *dummyCollector) SetScore(score int)     {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
