package experiments

import (
	"chainreaction/engine"
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/meta"
	"chainreaction/player"
	"chainreaction/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames  = 20 // Per match up
	BoardSize = 4  // Small enough to keep deep searches affordable
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthToStrength pits each search depth against the baseline
// depth-4 agent and records game and per-move search metrics.
func RunDepthToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.SearchDepth}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("depth_to_strength", append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		progress := newBar(NumGames, "matchup games")
		for i := 0; i < NumGames; i++ {
			// Alternate which config opens as Red for fairness
			red, blue := config1, config2
			if i%2 == 1 {
				red, blue = config2, config1
			}

			winner, gameMetric, moveMetrics := runGame(red, blue)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     red.ID,
				Agent2:     blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			progress.add(1)

			log.Info().Msgf("matchup %d game %d of %d won by %s", mi+1, i+1, NumGames, winner)
		}
	}

	writeRecords(name, configs, gameRecords, moveRecords)

	log.Info().Msgf("finished %s experiment", name)
}

// runGame plays one game between two agent configs, red moving first.
func runGame(red, blue metrics.AgentConfig) (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	board := game.NewBoard(BoardSize)
	e := engine.NewLocalEngine(board,
		player.NewAIPlayer(game.Red, searcher.WithDepth(red.Depth), searcher.WithMetrics()),
		player.NewAIPlayer(game.Blue, searcher.WithDepth(blue.Depth), searcher.WithMetrics()),
	)

	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		// AI players never fail to move; a failure here is a programming error
		panic(err)
	}
	return winner, gameMetric, moveMetrics
}

func writeRecords(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Error().Err(err).Msg("failed to create metrics writer")
		return
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Error().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Error().Err(err).Msg("failed to write move records")
	}
}
