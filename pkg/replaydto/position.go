// Package replaydto carries the read-only shapes the replay engine hands
// to its collaborators (renderer, chat, persistence).
package replaydto

// Piece is one board occupant in collaborator-facing form.
type Piece struct {
	Side string // "white" or "black"
	Kind string // "king", "queen", "rook", "bishop", "knight", "pawn"
}

// Position is a snapshot of the replay state at one cursor value.
// Board is a copy; mutating it never touches the engine.
type Position struct {
	Board       map[string]Piece
	Cursor      float64
	HasPrevious bool
	HasNext     bool
	LastFrom    string
	LastTo      string
}
