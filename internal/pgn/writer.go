package pgn

import (
	"fmt"
	"strings"
)

// EncodeTags renders the non-empty metadata fields as PGN tag-pair lines
// in the conventional order.
func EncodeTags(meta GameMetadata) string {
	var b strings.Builder
	tags := []struct {
		name  string
		value string
	}{
		{"Event", meta.Event},
		{"Site", meta.Site},
		{"Date", meta.Date},
		{"Round", meta.Round},
		{"White", meta.White},
		{"Black", meta.Black},
		{"Result", meta.Result},
	}
	for _, t := range tags {
		if t.value == "" {
			continue
		}
		fmt.Fprintf(&b, "[%s %q]\n", t.name, t.value)
	}
	return b.String()
}

// EncodeMoves renders the move list as a single movetext line, truncated
// to the first plies half-moves. A negative plies renders everything.
// Truncation mirrors the replay cursor exactly: an odd plies value ends
// the text on the white half of its final move.
func EncodeMoves(moves []MoveRecord, plies int) string {
	if plies < 0 {
		plies = len(moves) * 2
	}
	var parts []string
	for i, rec := range moves {
		if plies <= 2*i || rec.White == "" {
			break
		}
		if plies >= 2*i+2 && rec.Black != "" {
			parts = append(parts, fmt.Sprintf("%d. %s %s", rec.Number, rec.White, rec.Black))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d. %s", rec.Number, rec.White))
		break
	}
	return strings.Join(parts, " ")
}

// Encode reconstructs a complete PGN document for one game: tag section,
// blank line, movetext, and the result token.
func Encode(meta GameMetadata, moves []MoveRecord) string {
	result := meta.Result
	if result == "" {
		result = string(NoResult)
	}

	var b strings.Builder
	b.WriteString(EncodeTags(meta))
	b.WriteString("\n")
	if movetext := EncodeMoves(moves, -1); movetext != "" {
		b.WriteString(movetext)
		b.WriteString(" ")
	}
	b.WriteString(result)
	b.WriteString("\n")
	return b.String()
}
