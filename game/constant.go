package game

// ConstBoard is a read-only view of a Board. It forwards every query and,
// by construction, exposes no mutating operations, so handing one out
// cannot compromise the owner's exclusive right to mutate.
type ConstBoard struct {
	b *Board
}

// Readonly returns a read-only view of the board. The view observes later
// mutations made through the underlying board.
func (b *Board) Readonly() *ConstBoard { return &ConstBoard{b: b} }

func (cb *ConstBoard) Size() int       { return cb.b.Size() }
func (cb *ConstBoard) NumSquares() int { return cb.b.NumSquares() }
func (cb *ConstBoard) NumMoves() int   { return cb.b.NumMoves() }

func (cb *ConstBoard) Row(n int) int        { return cb.b.Row(n) }
func (cb *ConstBoard) Col(n int) int        { return cb.b.Col(n) }
func (cb *ConstBoard) SqNum(r, c int) int   { return cb.b.SqNum(r, c) }
func (cb *ConstBoard) Exists(r, c int) bool { return cb.b.Exists(r, c) }
func (cb *ConstBoard) ExistsSq(n int) bool  { return cb.b.ExistsSq(n) }

func (cb *ConstBoard) Get(r, c int) Square { return cb.b.Get(r, c) }
func (cb *ConstBoard) GetSq(n int) Square  { return cb.b.GetSq(n) }

func (cb *ConstBoard) NumPieces() int                { return cb.b.NumPieces() }
func (cb *ConstBoard) NumPiecesOfSide(side Side) int { return cb.b.NumPiecesOfSide(side) }
func (cb *ConstBoard) NumOfSide(side Side) int       { return cb.b.NumOfSide(side) }

func (cb *ConstBoard) WhoseMove() Side          { return cb.b.WhoseMove() }
func (cb *ConstBoard) IsTurn(player Side) bool  { return cb.b.IsTurn(player) }
func (cb *ConstBoard) Winner() Side             { return cb.b.Winner() }
func (cb *ConstBoard) Neighbors(n int) int      { return cb.b.Neighbors(n) }
func (cb *ConstBoard) NeighborsRC(r, c int) int { return cb.b.NeighborsRC(r, c) }

func (cb *ConstBoard) IsLegal(player Side, r, c int) bool { return cb.b.IsLegal(player, r, c) }
func (cb *ConstBoard) IsLegalSq(player Side, n int) bool  { return cb.b.IsLegalSq(player, n) }
func (cb *ConstBoard) LegalMoves(player Side) []int       { return cb.b.LegalMoves(player) }

func (cb *ConstBoard) MoveString(n int) string { return cb.b.MoveString(n) }
func (cb *ConstBoard) String() string          { return cb.b.String() }
func (cb *ConstBoard) DisplayString() string   { return cb.b.DisplayString() }
