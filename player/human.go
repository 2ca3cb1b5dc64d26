package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

// HumanPlayer reads "row col" moves from an input stream, prompting and
// retrying until it gets a legal one.
type HumanPlayer struct {
	side game.Side
	in   *bufio.Scanner
	out  io.Writer
}

func NewHumanPlayer(side game.Side, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		side: side,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (p *HumanPlayer) Side() game.Side { return p.side }

func (p *HumanPlayer) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	for {
		fmt.Fprintf(p.out, "%s> ", p.side)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return -1, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return -1, metrics.SearchMetric{}, io.EOF
		}
		line := strings.TrimSpace(p.in.Text())
		if line == "" {
			continue
		}

		var r, c int
		if _, err := fmt.Sscanf(line, "%d %d", &r, &c); err != nil {
			fmt.Fprintf(p.out, "cannot parse %q, expected \"row col\"\n", line)
			continue
		}
		if !b.Exists(r, c) {
			fmt.Fprintf(p.out, "square %d %d is off the board\n", r, c)
			continue
		}
		if !b.IsLegal(p.side, r, c) {
			fmt.Fprintf(p.out, "square %d %d belongs to %s\n", r, c, b.Get(r, c).Side())
			continue
		}
		return b.SqNum(r, c), metrics.SearchMetric{}, nil
	}
}
