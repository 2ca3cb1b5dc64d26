package game

// Square is the contents of one board cell: an owning side and a spot
// count. The zero value is an empty neutral square.
type Square struct {
	side  Side
	spots int
}

// square builds a Square, normalizing ownership: zero spots is always
// Neutral.
func square(side Side, spots int) Square {
	if spots == 0 {
		return Square{}
	}
	return Square{side: side, spots: spots}
}

// Side returns the square's owner, Neutral if it is empty.
func (sq Square) Side() Side { return sq.side }

// Spots returns the number of spots on the square.
func (sq Square) Spots() int { return sq.spots }
