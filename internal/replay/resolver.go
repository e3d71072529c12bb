// Package replay reconstructs board positions by replaying algebraic move
// notation from the initial position, and owns the navigation cursor over
// a parsed game.
package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rxtech-lab/chessmate/internal/board"
)

// ErrUnresolvedMove is returned when no occupied square plausibly sources
// a notation token. The board is left untouched; callers decide whether to
// skip the move or surface the failure.
var ErrUnresolvedMove = errors.New("no candidate piece resolves the move")

// Apply mutates b to reflect one algebraic move token for the given side
// and returns the source and destination squares of the moved piece (the
// king pair, for castling). Legality is not checked: resolution is a
// geometric candidate search, not move validation.
func Apply(b board.Board, side board.Side, token string) (board.Square, board.Square, error) {
	tok := strings.TrimRight(token, "+#")

	switch tok {
	case "O-O", "0-0":
		return castle(b, side, true), kingTo(side, true), nil
	case "O-O-O", "0-0-0":
		return castle(b, side, false), kingTo(side, false), nil
	}

	capture := strings.Contains(tok, "x")
	if capture {
		tok = strings.Replace(tok, "x", "", 1)
	}

	if len(tok) < 2 {
		return "", "", fmt.Errorf("%q: %w", token, ErrUnresolvedMove)
	}
	dest := board.Square(tok[len(tok)-2:])
	if !dest.Valid() {
		return "", "", fmt.Errorf("%q: bad destination: %w", token, ErrUnresolvedMove)
	}

	rest := tok[:len(tok)-2]
	kind := board.Pawn
	if len(rest) > 0 {
		if k, ok := board.KindFromLetter(rest[0]); ok {
			kind = k
			rest = rest[1:]
		}
	}

	// Whatever remains between the piece letter and the destination is a
	// SAN disambiguation hint: a file, a rank, or a full square. It
	// filters candidates before the proximity fallback kicks in.
	hintFile, hintRank := -1, -1
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; {
		case c >= 'a' && c <= 'h':
			hintFile = int(c - 'a')
		case c >= '1' && c <= '8':
			hintRank = int(c - '1')
		}
	}

	src, found := findSource(b, side, kind, dest, hintFile, hintRank)
	if !found {
		return "", "", fmt.Errorf("%s %s to %s: %w", side, kind, dest, ErrUnresolvedMove)
	}

	piece, _ := b.Piece(src)
	if capture {
		b.Clear(dest)
	}
	b.Clear(src)
	b.Set(dest, piece)
	return src, dest, nil
}

// findSource scans every occupied square in file-major, ascending-rank
// order. Among plausible candidates the one with the smallest file plus
// rank distance to the destination wins; ties keep the first encountered.
func findSource(b board.Board, side board.Side, kind board.Kind, dest board.Square, hintFile, hintRank int) (board.Square, bool) {
	var (
		best     board.Square
		bestDist = -1
	)
	for file := 0; file < 8; file++ {
		if hintFile >= 0 && file != hintFile {
			continue
		}
		for rank := 0; rank < 8; rank++ {
			if hintRank >= 0 && rank != hintRank {
				continue
			}
			sq := board.NewSquare(file, rank)
			if sq == dest {
				continue
			}
			p, ok := b.Piece(sq)
			if !ok || p.Side != side || p.Kind != kind {
				continue
			}
			if !plausible(kind, sq, dest) {
				continue
			}
			d := abs(sq.File()-dest.File()) + abs(sq.Rank()-dest.Rank())
			if bestDist < 0 || d < bestDist {
				best = sq
				bestDist = d
			}
		}
	}
	return best, bestDist >= 0
}

// plausible is unobstructed-geometry plausibility per piece kind. Pawns
// are always plausible: direction, double-step and en-passant nuances are
// intentionally not modeled.
func plausible(kind board.Kind, from, to board.Square) bool {
	df := abs(from.File() - to.File())
	dr := abs(from.Rank() - to.Rank())
	switch kind {
	case board.King:
		return df <= 1 && dr <= 1
	case board.Queen:
		return df == 0 || dr == 0 || df == dr
	case board.Rook:
		return df == 0 || dr == 0
	case board.Bishop:
		return df == dr
	case board.Knight:
		return (df == 1 && dr == 2) || (df == 2 && dr == 1)
	default:
		return true
	}
}

// castle applies the two fixed relocations from the standard starting
// squares and returns the king's source square.
func castle(b board.Board, side board.Side, kingside bool) board.Square {
	rank := 0
	if side == board.Black {
		rank = 7
	}
	kingFrom := board.NewSquare(4, rank)
	var rookFrom, rookTo board.Square
	if kingside {
		rookFrom, rookTo = board.NewSquare(7, rank), board.NewSquare(5, rank)
	} else {
		rookFrom, rookTo = board.NewSquare(0, rank), board.NewSquare(3, rank)
	}

	b.Clear(kingFrom)
	b.Set(kingTo(side, kingside), board.Piece{Side: side, Kind: board.King})
	b.Clear(rookFrom)
	b.Set(rookTo, board.Piece{Side: side, Kind: board.Rook})
	return kingFrom
}

func kingTo(side board.Side, kingside bool) board.Square {
	rank := 0
	if side == board.Black {
		rank = 7
	}
	if kingside {
		return board.NewSquare(6, rank)
	}
	return board.NewSquare(2, rank)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
