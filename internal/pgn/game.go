/*
Package pgn turns raw PGN (Portable Game Notation) text into structured,
immutable game records and renders them back out.

Parsing is deliberately best-effort: input produced by standard tools is
assumed, and a span that fails to parse cleanly still yields a Game with
whatever metadata and moves could be recovered.

Example usage:

	games := pgn.LoadText(raw)
	for _, g := range games {
		fmt.Println(g.Metadata.White, "vs", g.Metadata.Black, len(g.Moves))
	}
*/
package pgn

import (
	"fmt"

	"github.com/google/uuid"
)

// A Result is the game outcome token recorded in a PGN source.
type Result string

const (
	// NoResult indicates a game in progress or an unknown outcome.
	NoResult Result = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Result = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Result = "0-1"
	// Draw indicates a drawn game.
	Draw Result = "1/2-1/2"
)

func (r Result) String() string { return string(r) }

// resultTokens lists every terminator a movetext section may end with.
var resultTokens = []string{string(WhiteWon), string(BlackWon), string(Draw), string(NoResult)}

// IsResultToken reports whether tok is one of the four PGN result tokens.
func IsResultToken(tok string) bool {
	for _, r := range resultTokens {
		if tok == r {
			return true
		}
	}
	return false
}

// GameMetadata carries the recognized tag-pair values of one game.
// Fields are empty strings when the source omits the tag; unrecognized
// tags are dropped at parse time and never stored.
type GameMetadata struct {
	Event  string
	Site   string
	Date   string
	Round  string
	White  string
	Black  string
	Result string
}

// MoveRecord is one full move-number unit of a game. White is empty only
// for an unplayed slot; Black is empty when the game ends on white's move.
// Records are created during parsing and immutable afterwards.
type MoveRecord struct {
	Number  int
	White   string
	Black   string
	Display string
	Comment string // reserved, currently always empty
}

func displayText(number int, white, black string) string {
	if black == "" {
		return fmt.Sprintf("%d. %s", number, white)
	}
	return fmt.Sprintf("%d. %s %s", number, white, black)
}

// Game is one parsed game: an opaque generated identity, its metadata,
// the ordered move history, and the raw source span it came from.
// Games are read-only after parsing.
type Game struct {
	ID       string
	Metadata GameMetadata
	Moves    []MoveRecord
	Raw      string
}

// newGame assigns the generated identity unconditionally, so games with
// missing metadata fields remain addressable.
func newGame(meta GameMetadata, moves []MoveRecord, raw string) *Game {
	return &Game{
		ID:       uuid.NewString(),
		Metadata: meta,
		Moves:    moves,
		Raw:      raw,
	}
}
