package game

// Side identifies a player, or the owner of a square. The zero value
// Neutral marks an unclaimed square; a square with any spots on it always
// belongs to Red or Blue.
type Side int

const (
	Neutral Side = iota
	Red
	Blue
)

// Opposite returns the other player's color. Neutral is its own opposite.
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return Neutral
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return "Neutral"
	}
}

// glyph is the one-character form used in the dumped board representation.
func (s Side) glyph() byte {
	switch s {
	case Red:
		return 'r'
	case Blue:
		return 'b'
	default:
		return '-'
	}
}
