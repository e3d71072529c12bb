// Package board holds the minimal board model the replay engine works on:
// squares, pieces, and the sparse square-to-piece mapping.
package board

// Square is a two-character algebraic coordinate such as "e4".
// The file is in a..h and the rank in 1..8. It is used as an opaque
// map key; every Square emitted by this package is well formed.
type Square string

// NewSquare builds a Square from zero-based file and rank indexes.
func NewSquare(file, rank int) Square {
	return Square([]byte{byte('a' + file), byte('1' + rank)})
}

// Valid reports whether s names a real board square.
func (s Square) Valid() bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// File returns the zero-based file index (a=0 .. h=7).
func (s Square) File() int { return int(s[0] - 'a') }

// Rank returns the zero-based rank index (1=0 .. 8=7).
func (s Square) Rank() int { return int(s[1] - '1') }

func (s Square) String() string { return string(s) }

// Side identifies which player a piece belongs to.
type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Kind is the piece type.
type Kind uint8

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{"king", "queen", "rook", "bishop", "knight", "pawn"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the SAN piece letter, with an empty string for pawns.
func (k Kind) Letter() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	default:
		return ""
	}
}

// KindFromLetter maps a SAN piece letter to its Kind. The second return
// value is false when the letter is not one of K, Q, R, B, N.
func KindFromLetter(b byte) (Kind, bool) {
	switch b {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	}
	return Pawn, false
}

// Piece is an immutable side/kind pair.
type Piece struct {
	Side Side
	Kind Kind
}

// Board maps occupied squares to pieces. Empty squares are absent keys.
// Callers outside the replay engine must treat a Board as a read-only
// snapshot; all mutation goes through the replay session.
type Board map[Square]Piece

// Piece returns the occupant of sq, if any.
func (b Board) Piece(sq Square) (Piece, bool) {
	p, ok := b[sq]
	return p, ok
}

// Set places p on sq, replacing any previous occupant.
func (b Board) Set(sq Square, p Piece) { b[sq] = p }

// Clear empties sq.
func (b Board) Clear(sq Square) { delete(b, sq) }

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	out := make(Board, len(b))
	for sq, p := range b {
		out[sq] = p
	}
	return out
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition returns a fresh board in the standard initial layout.
func StartingPosition() Board {
	b := make(Board, 32)
	for file := 0; file < 8; file++ {
		b[NewSquare(file, 0)] = Piece{Side: White, Kind: backRank[file]}
		b[NewSquare(file, 1)] = Piece{Side: White, Kind: Pawn}
		b[NewSquare(file, 6)] = Piece{Side: Black, Kind: Pawn}
		b[NewSquare(file, 7)] = Piece{Side: Black, Kind: backRank[file]}
	}
	return b
}
