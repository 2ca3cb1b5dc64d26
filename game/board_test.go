package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNeighbors(t *testing.T) {
	for _, size := range []int{2, 3, 5, 6} {
		b := NewBoard(size)
		for n := 0; n < b.NumSquares(); n++ {
			r, c := b.Row(n), b.Col(n)
			want := 4
			if r == 1 {
				want--
			}
			if r == size {
				want--
			}
			if c == 1 {
				want--
			}
			if c == size {
				want--
			}
			require.Equal(t, want, b.Neighbors(n), "size %d square %d", size, n)
			require.Equal(t, want, b.NeighborsRC(r, c), "size %d square %d", size, n)
		}
	}

	b := NewBoard(3)
	require.Equal(t, 2, b.NeighborsRC(1, 1), "corner should have 2 neighbors")
	require.Equal(t, 3, b.NeighborsRC(1, 2), "edge should have 3 neighbors")
	require.Equal(t, 4, b.NeighborsRC(2, 2), "interior should have 4 neighbors")
}

func TestIndexing(t *testing.T) {
	b := NewBoard(4)
	for n := 0; n < b.NumSquares(); n++ {
		require.Equal(t, n, b.SqNum(b.Row(n), b.Col(n)), "row/col round trip for square %d", n)
	}
	require.True(t, b.Exists(1, 1))
	require.True(t, b.Exists(4, 4))
	require.False(t, b.Exists(0, 1))
	require.False(t, b.Exists(1, 5))
	require.True(t, b.ExistsSq(0))
	require.True(t, b.ExistsSq(15))
	require.False(t, b.ExistsSq(-1))
	require.False(t, b.ExistsSq(16))
}

func TestWhoseMoveOpensRed(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 6} {
		b := NewBoard(size)
		require.Equal(t, Red, b.WhoseMove(), "empty %dx%d board should open with Red", size, size)
		require.True(t, b.IsTurn(Red))
		require.False(t, b.IsTurn(Blue))
	}
}

func TestAddSpot(t *testing.T) {
	t.Run("first placement on a neutral square yields two spots", func(t *testing.T) {
		b := NewBoard(3)
		b.AddSpot(Red, 1, 1)

		sq := b.Get(1, 1)
		require.Equal(t, Red, sq.Side())
		require.Equal(t, 2, sq.Spots())
		require.Equal(t, 1, b.NumMoves())
		require.Equal(t, Red, b.CurrentPlayer())
	})

	t.Run("placement on an owned square adds one spot", func(t *testing.T) {
		b := NewBoard(3)
		b.AddSpot(Red, 2, 2)
		b.AddSpot(Blue, 1, 3)
		b.AddSpot(Red, 2, 2)

		sq := b.Get(2, 2)
		require.Equal(t, Red, sq.Side())
		require.Equal(t, 3, sq.Spots())
		require.Equal(t, 3, b.NumMoves())
	})

	t.Run("2x2 legality follows current ownership only", func(t *testing.T) {
		b := NewBoard(2)
		b.AddSpot(Red, 1, 1)

		require.Equal(t, 2, b.Get(1, 1).Spots(), "corner placement should not overflow at 2 spots")
		require.True(t, b.IsLegal(Red, 1, 1))
		require.False(t, b.IsLegal(Blue, 1, 1))
		require.True(t, b.IsLegal(Blue, 2, 2), "neutral squares are legal for both")
	})
}

func TestConservation(t *testing.T) {
	b := NewBoard(3)

	before := b.NumPieces()
	b.AddSpot(Red, 1, 1)
	require.Equal(t, before+2, b.NumPieces(), "neutral placement adds two spots")

	before = b.NumPieces()
	b.AddSpot(Blue, 3, 3)
	require.Equal(t, before+2, b.NumPieces())

	before = b.NumPieces()
	b.AddSpot(Red, 1, 1)
	require.Equal(t, before+1, b.NumPieces(), "owned placement adds one spot while the cascade conserves")
}

func TestCornerOverflow(t *testing.T) {
	// A 3x3 corner holds at most 2 spots; the third jumps to its two
	// neighbors and claims them.
	b := NewBoard(3)
	b.Set(1, 1, 2, Red)
	b.Set(1, 2, 1, Blue)

	b.AddSpot(Red, 1, 1)

	require.Equal(t, 1, b.Get(1, 1).Spots(), "source keeps spots minus neighbor count")
	require.Equal(t, Red, b.Get(1, 1).Side())
	require.Equal(t, 2, b.Get(1, 2).Spots(), "owned neighbor is incremented")
	require.Equal(t, Red, b.Get(1, 2).Side(), "delivery claims the neighbor")
	require.Equal(t, 1, b.Get(2, 1).Spots(), "neutral neighbor converts with one spot")
	require.Equal(t, Red, b.Get(2, 1).Side())
}

func TestCascadeStopsAtWinner(t *testing.T) {
	// Full 2x2 board: Red's fifth spot at (1,1) chains through every
	// square. Once all four turn Red, delivery must stop instead of
	// wrapping around the finished board.
	b := NewBoard(2)
	b.Set(1, 1, 2, Red)
	b.Set(1, 2, 2, Red)
	b.Set(2, 1, 2, Blue)
	b.Set(2, 2, 2, Blue)

	b.AddSpot(Red, 1, 1)

	require.Equal(t, Red, b.Winner())
	for n := 0; n < b.NumSquares(); n++ {
		sq := b.GetSq(n)
		require.Equal(t, Red, sq.Side(), "square %d", n)
		require.LessOrEqual(t, sq.Spots(), b.Neighbors(n), "square %d should not stay overfull", n)
	}
}

func TestCascadeTermination(t *testing.T) {
	// Saturate a 3x3 board to one spot under every capacity, then push it
	// over: the cascade must settle with a winner rather than loop.
	b := NewBoard(3)
	for n := 0; n < b.NumSquares(); n++ {
		side := Red
		if n%2 == 1 {
			side = Blue
		}
		b.Set(b.Row(n), b.Col(n), b.Neighbors(n), side)
	}

	b.AddSpot(Red, 2, 2)

	require.Equal(t, Red, b.Winner())
	for n := 0; n < b.NumSquares(); n++ {
		require.LessOrEqual(t, b.GetSq(n).Spots(), b.Neighbors(n), "square %d", n)
	}
}

func TestWinner(t *testing.T) {
	b := NewBoard(2)
	require.Equal(t, Neutral, b.Winner(), "empty board has no winner")

	b.AddSpot(Red, 1, 1)
	require.Equal(t, Neutral, b.Winner(), "partly neutral board has no winner")

	for _, n := range []int{1, 2, 3} {
		b.Set(b.Row(n), b.Col(n), 1, Red)
	}
	require.Equal(t, Red, b.Winner())
}

func TestUndo(t *testing.T) {
	t.Run("undo reverses a cascade exactly", func(t *testing.T) {
		b := NewBoard(3)
		b.AddSpot(Red, 1, 1)
		b.AddSpot(Blue, 1, 3)
		before := b.String()

		b.AddSpot(Red, 1, 1) // third corner spot overflows
		require.NotEqual(t, before, b.String())

		b.Undo()
		require.Equal(t, before, b.String())
		require.Equal(t, 2, b.NumMoves())
	})

	t.Run("undo past the boundary is a no-op", func(t *testing.T) {
		b := NewBoard(3)
		initial := b.String()
		b.Undo()
		require.Equal(t, initial, b.String())
		require.Equal(t, 0, b.NumMoves())

		b.AddSpot(Red, 1, 1)
		b.Undo()
		b.Undo()
		b.Undo()
		require.Equal(t, initial, b.String())
	})

	t.Run("undo inverts random move sequences", func(t *testing.T) {
		rng := rand.New(rand.NewSource(61))
		b := NewBoard(4)

		var dumps []string
		mover := Red
		for i := 0; i < 30 && b.Winner() == Neutral; i++ {
			dumps = append(dumps, b.String())
			moves := b.LegalMoves(mover)
			b.AddSpotSq(mover, moves[rng.Intn(len(moves))])
			mover = mover.Opposite()
		}

		for i := len(dumps) - 1; i >= 0; i-- {
			b.Undo()
			require.Equal(t, dumps[i], b.String(), "undo %d", len(dumps)-i)
		}
		require.Equal(t, 0, b.NumMoves())
	})

	t.Run("committing after undo truncates the stale future", func(t *testing.T) {
		b := NewBoard(3)
		b.AddSpot(Red, 1, 1)
		b.AddSpot(Blue, 3, 3)
		b.Undo()

		b.AddSpot(Blue, 2, 2)
		require.Equal(t, 2, b.NumMoves())

		b.Undo()
		require.Equal(t, Neutral, b.Get(2, 2).Side())
		require.Equal(t, Red, b.Get(1, 1).Side())
	})
}

func TestClearAndCopy(t *testing.T) {
	t.Run("clear resets state and history", func(t *testing.T) {
		b := NewBoard(3)
		b.AddSpot(Red, 1, 1)
		b.AddSpot(Blue, 2, 2)

		b.Clear(4)

		require.Equal(t, 4, b.Size())
		require.Equal(t, 0, b.NumMoves())
		require.Equal(t, 0, b.NumPieces())
		cleared := b.String()
		b.Undo()
		require.Equal(t, cleared, b.String(), "clear is an undo boundary")
	})

	t.Run("copy takes contents but not history", func(t *testing.T) {
		src := NewBoard(3)
		src.AddSpot(Red, 1, 1)
		src.AddSpot(Blue, 3, 3)

		b := NewBoard(3)
		b.Copy(src)

		require.True(t, b.Equal(src))
		require.Equal(t, 0, b.NumMoves())
		copied := b.String()
		b.Undo()
		require.Equal(t, copied, b.String(), "copied history starts fresh")
	})

	t.Run("copied board is independent", func(t *testing.T) {
		src := NewBoard(3)
		src.AddSpot(Red, 1, 1)

		b := NewBoardFrom(src)
		b.AddSpot(Blue, 3, 3)

		require.Equal(t, Neutral, src.Get(3, 3).Side(), "mutating the copy must not touch the source")
		require.False(t, b.Equal(src))
	})
}

func TestNotifier(t *testing.T) {
	b := NewBoard(3)

	calls := 0
	b.SetNotifier(func(got *Board) {
		require.Same(t, b, got)
		calls++
	})
	require.Equal(t, 1, calls, "registration announces once")

	calls = 0
	b.Set(1, 1, 2, Red)
	b.Set(1, 2, 3, Blue)
	require.Equal(t, 2, calls, "each set announces once")

	calls = 0
	b.AddSpot(Red, 1, 1) // cascades into (1,2) and beyond
	require.Equal(t, 1, calls, "one announcement per addSpot regardless of cascade size")

	calls = 0
	b.Clear(3)
	require.Equal(t, 1, calls)

	b.SetNotifier(nil)
	b.AddSpot(Red, 1, 1) // must not panic with the notifier unset
}

func TestDump(t *testing.T) {
	b := NewBoard(2)
	b.AddSpot(Red, 1, 1)
	b.AddSpot(Blue, 2, 2)

	want := "===\n" +
		"    2r 0-\n" +
		"    0- 2b\n" +
		"==="
	require.Equal(t, want, b.String())
}

func TestMoveString(t *testing.T) {
	b := NewBoard(3)
	require.Equal(t, "1 1", b.MoveString(0))
	require.Equal(t, "2 3", b.MoveString(5))
	require.Equal(t, "3 3", b.MoveString(8))
}

func TestEqual(t *testing.T) {
	a := NewBoard(3)
	b := NewBoard(3)
	require.True(t, a.Equal(b))

	a.AddSpot(Red, 1, 1)
	require.False(t, a.Equal(b))

	b.AddSpot(Red, 1, 1)
	require.True(t, a.Equal(b), "equality ignores move history")

	c := NewBoard(4)
	require.False(t, a.Equal(c), "different sizes are never equal")
}

func TestReadonly(t *testing.T) {
	b := NewBoard(3)
	view := b.Readonly()

	b.AddSpot(Red, 1, 1)

	require.Equal(t, b.Size(), view.Size())
	require.Equal(t, b.NumPieces(), view.NumPieces(), "view observes mutations")
	require.Equal(t, b.Get(1, 1), view.Get(1, 1))
	require.Equal(t, b.WhoseMove(), view.WhoseMove())
	require.Equal(t, b.String(), view.String())
	require.Equal(t, b.LegalMoves(Blue), view.LegalMoves(Blue))
}

func TestLegalMoves(t *testing.T) {
	b := NewBoard(2)
	require.Equal(t, []int{0, 1, 2, 3}, b.LegalMoves(Red))

	b.AddSpot(Red, 1, 1)
	require.Equal(t, []int{0, 1, 2, 3}, b.LegalMoves(Red))
	require.Equal(t, []int{1, 2, 3}, b.LegalMoves(Blue))
}

func TestCounts(t *testing.T) {
	b := NewBoard(3)
	b.AddSpot(Red, 1, 1)
	b.AddSpot(Blue, 2, 2)
	b.AddSpot(Red, 1, 1)

	// The third corner spot overflowed into (1,2) and (2,1)
	require.Equal(t, 5, b.NumPieces())
	require.Equal(t, 3, b.NumPiecesOfSide(Red))
	require.Equal(t, 2, b.NumPiecesOfSide(Blue))
	require.Equal(t, 3, b.NumOfSide(Red))
	require.Equal(t, 1, b.NumOfSide(Blue))
	require.Equal(t, 5, b.NumOfSide(Neutral))
}
