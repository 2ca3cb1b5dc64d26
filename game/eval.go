package game

// WinningValue is the score of a decided game, signed by the winner. It
// dominates any heuristic value reachable on boards of practical size, so
// a won position always outranks an undecided one.
const WinningValue = 1 << 20

// Evaluate scores a position on the shared convention that positive favors
// Red and negative favors Blue. side is the evaluating player's own color,
// fixed for a whole search; whose turn it is at a given node is the
// searcher's business, not the evaluator's.
type Evaluate func(b *Board, side Side) int

// EvaluateCornerMaterial is the standard heuristic. A won board scores
// +/-WinningValue by winner. Otherwise each square owned by side counts 3
// in a corner, 2 on a non-corner edge and 1 inside, and the sum is scaled
// by side's total spot count: corner and edge squares are harder to flip,
// and material amplifies structural advantage. The result carries side's
// sign in the ambient convention.
func EvaluateCornerMaterial(b *Board, side Side) int {
	switch b.Winner() {
	case Red:
		return WinningValue
	case Blue:
		return -WinningValue
	}
	weight := 0
	for n := 0; n < b.NumSquares(); n++ {
		if b.GetSq(n).Side() != side {
			continue
		}
		switch b.Neighbors(n) {
		case 2:
			weight += 3
		case 3:
			weight += 2
		default:
			weight++
		}
	}
	score := weight * b.NumPiecesOfSide(side)
	if side == Blue {
		return -score
	}
	return score
}
