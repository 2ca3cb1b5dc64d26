// meta/meta.go
package meta

// DefaultSize is the default board side length.
const DefaultSize = 6

// SearchDepth is the default minimax search depth in plies.
const SearchDepth = 4

// MaxMoves caps a game's length as a safety net for the driver loop.
const MaxMoves = 10000
