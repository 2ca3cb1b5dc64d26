package game

import (
	"fmt"
	"strings"
)

// Board holds the state of one chain-reaction game on an N x N grid.
// Squares are addressed either by row and column (1-indexed, between 1 and
// Size()) or by square number (0-indexed, row-major: row 1 holds squares 0
// to Size()-1, row 2 the next Size(), and so on).
//
// A Board may be given a notifier, a func(*Board) called whenever the
// board's contents are committed; the default notifier does nothing.
//
// Boards are not safe for concurrent use. The driver owns the
// authoritative board; a searcher works on its own private copy.
type Board struct {
	size    int
	squares []Square
	current Side // player who made the most recent move
	moves   int  // committed AddSpot calls since construction or Clear
	history [][]Square
	notify  func(*Board)
}

// NewBoard returns an empty size x size board with Red to move.
func NewBoard(size int) *Board {
	b := &Board{notify: func(*Board) {}}
	b.init(size)
	return b
}

// NewBoardFrom returns an independent mutable copy of src, with a fresh
// undo history and a no-op notifier.
func NewBoardFrom(src *Board) *Board {
	b := NewBoard(src.Size())
	b.Copy(src)
	return b
}

func (b *Board) init(size int) {
	if size < 2 {
		panic(fmt.Sprintf("board size %d too small", size))
	}
	b.size = size
	b.squares = make([]Square, size*size)
	b.current = Red
	b.moves = 0
	b.history = append(b.history[:0], b.snapshot())
}

func (b *Board) snapshot() []Square {
	s := make([]Square, len(b.squares))
	copy(s, b.squares)
	return s
}

// Clear reinitializes the board to an empty size x size grid, dropping the
// undo history and resetting the move count to 0.
func (b *Board) Clear(size int) {
	b.init(size)
	b.announce()
}

// Copy replaces the board's contents with src's, without inheriting src's
// undo history or notifier.
func (b *Board) Copy(src *Board) {
	b.size = src.size
	b.squares = make([]Square, len(src.squares))
	copy(b.squares, src.squares)
	b.current = Red
	b.moves = 0
	b.history = append(b.history[:0], b.snapshot())
}

// Size returns the number of rows (and of columns).
func (b *Board) Size() int { return b.size }

// NumSquares returns the total number of squares.
func (b *Board) NumSquares() int { return len(b.squares) }

// NumMoves returns the number of committed moves since construction or the
// last Clear.
func (b *Board) NumMoves() int { return b.moves }

// CurrentPlayer returns the side that made the most recent move.
func (b *Board) CurrentPlayer() Side { return b.current }

// Row returns the 1-indexed row of square #n.
func (b *Board) Row(n int) int { return n/b.size + 1 }

// Col returns the 1-indexed column of square #n.
func (b *Board) Col(n int) int { return n%b.size + 1 }

// SqNum returns the square number of row r, column c.
func (b *Board) SqNum(r, c int) int { return (c - 1) + (r-1)*b.size }

// Exists reports whether row r, column c denotes a valid square.
func (b *Board) Exists(r, c int) bool {
	return 1 <= r && r <= b.size && 1 <= c && c <= b.size
}

// ExistsSq reports whether n is a valid square number.
func (b *Board) ExistsSq(n int) bool { return 0 <= n && n < len(b.squares) }

// Get returns the contents of the square at row r, column c.
func (b *Board) Get(r, c int) Square { return b.squares[b.SqNum(r, c)] }

// GetSq returns the contents of square #n.
func (b *Board) GetSq(n int) Square { return b.squares[n] }

// NumPieces returns the total number of spots on the board.
func (b *Board) NumPieces() int {
	total := 0
	for _, sq := range b.squares {
		total += sq.spots
	}
	return total
}

// NumPiecesOfSide returns the total number of spots on squares owned by
// side.
func (b *Board) NumPiecesOfSide(side Side) int {
	total := 0
	for _, sq := range b.squares {
		if sq.side == side {
			total += sq.spots
		}
	}
	return total
}

// NumOfSide returns the number of squares owned by side.
func (b *Board) NumOfSide(side Side) int {
	count := 0
	for _, sq := range b.squares {
		if sq.side == side {
			count++
		}
	}
	return count
}

// WhoseMove returns the side whose turn it would be under strict
// alternation from an empty board, Red first. Derived from the total spot
// count so it survives Copy; the driver, not the board, enforces actual
// turn order.
func (b *Board) WhoseMove() Side {
	if b.NumPieces()%2 == 0 {
		return Red
	}
	return Blue
}

// IsLegal reports whether player may add a spot at row r, column c: the
// square must be neutral or already owned by player.
func (b *Board) IsLegal(player Side, r, c int) bool {
	return b.IsLegalSq(player, b.SqNum(r, c))
}

// IsLegalSq reports whether player may add a spot to square #n.
func (b *Board) IsLegalSq(player Side, n int) bool {
	side := b.squares[n].side
	return side == Neutral || side == player
}

// IsTurn reports whether it is player's turn to move.
func (b *Board) IsTurn(player Side) bool { return b.WhoseMove() == player }

// LegalMoves lists the square numbers player may add a spot to, in
// increasing order.
func (b *Board) LegalMoves(player Side) []int {
	moves := make([]int, 0, len(b.squares))
	for n := range b.squares {
		if b.IsLegalSq(player, n) {
			moves = append(moves, n)
		}
	}
	return moves
}

// Winner returns the winning side if every square belongs to one player,
// and Neutral otherwise.
func (b *Board) Winner() Side {
	winner := b.squares[0].side
	if winner == Neutral {
		return Neutral
	}
	for _, sq := range b.squares[1:] {
		if sq.side != winner {
			return Neutral
		}
	}
	return winner
}

// NeighborsRC returns the number of board neighbors of the square at row
// r, column c: 2 in a corner, 3 on a non-corner edge, 4 inside.
func (b *Board) NeighborsRC(r, c int) int {
	n := 0
	if r > 1 {
		n++
	}
	if c > 1 {
		n++
	}
	if r < b.size {
		n++
	}
	if c < b.size {
		n++
	}
	return n
}

// Neighbors returns the number of board neighbors of square #n.
func (b *Board) Neighbors(n int) int { return b.NeighborsRC(b.Row(n), b.Col(n)) }

// neighborSquares lists the existing neighbors of square #n in up, left,
// down, right order. Cascade delivery depends on this order.
func (b *Board) neighborSquares(n int) []int {
	r, c := n/b.size, n%b.size
	neigh := make([]int, 0, 4)
	if r > 0 {
		neigh = append(neigh, n-b.size)
	}
	if c > 0 {
		neigh = append(neigh, n-1)
	}
	if r < b.size-1 {
		neigh = append(neigh, n+b.size)
	}
	if c < b.size-1 {
		neigh = append(neigh, n+1)
	}
	return neigh
}

// AddSpot adds a spot for player at row r, column c, resolving any
// resulting cascade. The caller guarantees IsLegal(player, r, c) and that
// the game is not already won.
func (b *Board) AddSpot(player Side, r, c int) {
	b.AddSpotSq(player, b.SqNum(r, c))
}

// AddSpotSq adds a spot for player at square #n. A first placement on a
// neutral square yields two spots; otherwise the count goes up by one. If
// the square ends up with more spots than neighbors, the excess jumps to
// the neighbors, claiming them for player and possibly cascading. The
// notifier fires exactly once per call, however far the cascade reaches.
func (b *Board) AddSpotSq(player Side, n int) {
	b.current = player
	sq := b.squares[n]
	if sq.side == Neutral {
		b.squares[n] = square(player, 2)
	} else if b.Winner() == Neutral {
		b.setSq(n, sq.spots+1, player)
	}
	if b.overfull(n) {
		b.jump(n)
	}
	b.commit()
	b.announce()
}

// Set puts spots spots of color side on the square at row r, column c
// (neutral when spots is 0) and announces the change. Set bypasses the
// undo history.
func (b *Board) Set(r, c, spots int, side Side) {
	b.setSq(b.SqNum(r, c), spots, side)
	b.announce()
}

func (b *Board) setSq(n, spots int, side Side) {
	b.squares[n] = square(side, spots)
}

// commit records the grid in the undo history and advances the move count.
// Snapshots made obsolete by earlier undos are discarded first, so exactly
// one snapshot per committed move remains reachable.
func (b *Board) commit() {
	b.moves++
	b.history = append(b.history[:b.moves], b.snapshot())
}

// Undo reverses the effect of one committed AddSpot. Moves can only be
// undone back to the last Clear or the board's construction; past that,
// Undo is a no-op.
func (b *Board) Undo() {
	if b.moves > 0 {
		b.moves--
		copy(b.squares, b.history[b.moves])
	}
}

// overfull reports whether square #n holds more spots than it has
// neighbors.
func (b *Board) overfull(n int) bool {
	return b.squares[n].spots > b.Neighbors(n)
}

// jump redistributes the contents of overfull square #n: the square keeps
// its spots minus its neighbor count, and each neighbor receives one spot
// and the current player's color, cascading recursively while squares
// remain overfull.
func (b *Board) jump(n int) {
	b.setSq(n, b.squares[n].spots-b.Neighbors(n), b.current)
	for _, m := range b.neighborSquares(n) {
		b.deliver(m)
	}
}

// deliver lands one cascade spot on square #m. Once the board has a
// winner, delivery stops: a finished board must not keep cascading.
func (b *Board) deliver(m int) {
	if b.Winner() != Neutral {
		return
	}
	b.setSq(m, b.squares[m].spots+1, b.current)
	if b.overfull(m) {
		b.jump(m)
	}
}

// SetNotifier registers notify to be called with the board after every
// committed change, replacing any previous notifier. The new notifier is
// invoked once immediately.
func (b *Board) SetNotifier(notify func(*Board)) {
	if notify == nil {
		notify = func(*Board) {}
	}
	b.notify = notify
	b.announce()
}

func (b *Board) announce() { b.notify(b) }

// MoveString renders square #n in the "row col" form the drivers speak.
func (b *Board) MoveString(n int) string {
	return fmt.Sprintf("%d %d", b.Row(n), b.Col(n))
}

// Equal reports whether two boards have the same size and the same owner
// and spot count on every square.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

// String returns the dumped representation: rows top to bottom as
// <spots><glyph> tokens bracketed by === lines. The format round-trips
// within this implementation only; it is not an interchange format.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for r := 1; r <= b.size; r++ {
		sb.WriteString("    ")
		for c := 1; c <= b.size; c++ {
			if c > 1 {
				sb.WriteByte(' ')
			}
			sq := b.Get(r, c)
			fmt.Fprintf(&sb, "%d%c", sq.spots, sq.side.glyph())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("===")
	return sb.String()
}

// DisplayString returns a human-readable rendition with row and column
// numbers, distinct from the dumped representation.
func (b *Board) DisplayString() string {
	var sb strings.Builder
	for r := 1; r <= b.size; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 1; c <= b.size; c++ {
			if c > 1 {
				sb.WriteByte(' ')
			}
			sq := b.Get(r, c)
			fmt.Fprintf(&sb, "%d%c", sq.spots, sq.side.glyph())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for c := 1; c <= b.size; c++ {
		fmt.Fprintf(&sb, "%3d", c)
	}
	return sb.String()
}
