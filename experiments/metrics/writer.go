package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies one searcher configuration under test.
type AgentConfig struct {
	ID    int
	Depth int
}

// GameRecord ties a game metric to the two agents that produced it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing Red
	Agent2 int // AgentConfig.ID, playing Blue
	GameMetric
}

// MoveRecord ties a move metric to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer dumps experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "depth"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "starting_player",
		"winner", "duration_ms", "total_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.FormatInt(record.GameMetric.Duration.Milliseconds(), 10),
			strconv.Itoa(record.TotalMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "depth",
		"duration_us", "nodes", "leaves", "prunes", "score"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Depth),
			strconv.FormatInt(record.SearchMetric.Duration.Microseconds(), 10),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Prunes),
			strconv.Itoa(record.Score),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
