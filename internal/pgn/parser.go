package pgn

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tagPair = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)
	// moveMarker matches a move-number token such as "12." ("12..." is
	// tolerated for black-to-move continuations).
	moveMarker = regexp.MustCompile(`^(\d+)\.+$`)
)

// LoadText parses raw PGN text containing zero or more concatenated games
// and returns every game found, in source order. Parsing never fails:
// a span with unusable movetext still yields a Game carrying its metadata
// and whatever moves were recovered.
func LoadText(raw string) []*Game {
	spans := Split(raw)
	games := make([]*Game, 0, len(spans))
	for _, span := range spans {
		games = append(games, ParseGame(span))
	}
	return games
}

// ParseGame extracts metadata and the ordered move list from one game span.
func ParseGame(span string) *Game {
	meta, movetext := splitSections(span)
	return newGame(meta, parseMovetext(movetext), span)
}

// splitSections walks the span line by line, recording recognized tag
// pairs and collecting every non-tag, non-blank line into one movetext
// buffer. Unrecognized tags are ignored; malformed tag lines are skipped.
func splitSections(span string) (GameMetadata, string) {
	var meta GameMetadata
	var moveLines []string

	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := tagPair.FindStringSubmatch(line); m != nil {
			switch m[1] {
			case "Event":
				meta.Event = m[2]
			case "Site":
				meta.Site = m[2]
			case "Date":
				meta.Date = m[2]
			case "Round":
				meta.Round = m[2]
			case "White":
				meta.White = m[2]
			case "Black":
				meta.Black = m[2]
			case "Result":
				meta.Result = m[2]
			}
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Unparsable tag line, not movetext.
			continue
		}
		moveLines = append(moveLines, line)
	}
	return meta, strings.Join(moveLines, " ")
}

// parseMovetext walks whitespace-separated tokens with a small state
// machine, reconstructing move numbering even when the source wraps lines
// or omits markers. Result tokens are terminators, not moves, and are
// skipped wherever they appear. An unfinished final move (white half with
// no black reply) is emitted as its own record.
func parseMovetext(movetext string) []MoveRecord {
	var (
		moves   []MoveRecord
		number  = 1
		pending string
		hasMove bool
	)

	flush := func() {
		if !hasMove {
			return
		}
		moves = append(moves, MoveRecord{
			Number:  number,
			White:   pending,
			Display: displayText(number, pending, ""),
		})
		pending = ""
		hasMove = false
	}

	for _, tok := range strings.Fields(movetext) {
		if IsResultToken(tok) {
			continue
		}
		if m := moveMarker.FindStringSubmatch(tok); m != nil {
			flush()
			if n, err := strconv.Atoi(m[1]); err == nil {
				number = n
			}
			continue
		}
		if !hasMove {
			pending = tok
			hasMove = true
			continue
		}
		moves = append(moves, MoveRecord{
			Number:  number,
			White:   pending,
			Black:   tok,
			Display: displayText(number, pending, tok),
		})
		pending = ""
		hasMove = false
		number++
	}
	flush()

	return moves
}
