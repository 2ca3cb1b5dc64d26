package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chainreaction/config"
	"chainreaction/engine"
	"chainreaction/experiments"
	"chainreaction/game"
	"chainreaction/player"
	"chainreaction/searcher"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	size := flag.Int("size", 0, "board size (overrides config)")
	depth := flag.Int("depth", 0, "AI search depth in plies (overrides config)")
	red := flag.String("red", "", "red player: human, ai or random (overrides config)")
	blue := flag.String("blue", "", "blue player: human, ai or random (overrides config)")
	noColor := flag.Bool("no-color", false, "disable colored board rendering")
	runExperiments := flag.Bool("experiments", false, "run the depth-to-strength experiment and exit")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *runExperiments {
		experiments.RunDepthToStrength()
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("bad configuration")
		}
	}
	if *size > 0 {
		cfg.Size = *size
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *red != "" {
		cfg.Red = *red
	}
	if *blue != "" {
		cfg.Blue = *blue
	}
	if *noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	board := game.NewBoard(cfg.Size)
	board.SetNotifier(func(b *game.Board) {
		fmt.Println(render(b, cfg.Color))
	})

	e := engine.NewLocalEngine(board,
		makePlayer(cfg.Red, game.Red, cfg),
		makePlayer(cfg.Blue, game.Blue, cfg),
	)

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == game.Neutral {
		fmt.Println("No winner.")
		return
	}
	fmt.Printf("%s wins in %d moves.\n", winner, gameMetric.TotalMoves)
}

func makePlayer(kind string, side game.Side, cfg config.Config) player.Player {
	switch kind {
	case config.KindHuman:
		return player.NewHumanPlayer(side, os.Stdin, os.Stdout)
	case config.KindRandom:
		return player.NewRandomPlayer(side, cfg.Seed+uint64(side))
	default:
		return player.NewAIPlayer(side, searcher.WithDepth(cfg.Depth), searcher.WithMetrics())
	}
}

// boardView is the read-only surface rendering needs; *game.Board and
// *game.ConstBoard both provide it.
type boardView interface {
	Size() int
	Get(r, c int) game.Square
}

// render draws the board with row and column legends, coloring owned
// squares when colored is set.
func render(v boardView, colored bool) string {
	var sb strings.Builder
	size := v.Size()
	for r := 1; r <= size; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 1; c <= size; c++ {
			if c > 1 {
				sb.WriteByte(' ')
			}
			sb.WriteString(token(v.Get(r, c), colored))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for c := 1; c <= size; c++ {
		fmt.Fprintf(&sb, "%3d", c)
	}
	return sb.String()
}

func token(sq game.Square, colored bool) string {
	text := fmt.Sprintf("%d%c", sq.Spots(), sideGlyph(sq.Side()))
	if !colored {
		return text
	}
	switch sq.Side() {
	case game.Red:
		return aurora.Red(text).String()
	case game.Blue:
		return aurora.Blue(text).String()
	default:
		return text
	}
}

func sideGlyph(s game.Side) byte {
	switch s {
	case game.Red:
		return 'r'
	case game.Blue:
		return 'b'
	default:
		return '-'
	}
}
