package pgn

import (
	"regexp"
	"strings"
)

// gameBoundary matches the end of one game's movetext: whitespace, a
// result token, then at least one blank line and the opening bracket of
// the next game's tag section. The final game of a source needs no
// boundary; the trailing remainder covers it.
var gameBoundary = regexp.MustCompile(`\s(1-0|0-1|1/2-1/2|\*)[ \t]*\n\s*\n\s*\[`)

// Split cuts raw multi-game text into per-game spans. The spans partition
// the normalized input exactly: concatenating them reproduces it, with the
// boundary bracket opening the following span. When no boundary is found
// the whole input is a single span. Whitespace-only spans are dropped.
func Split(raw string) []string {
	text := normalizeNewlines(raw)

	matches := gameBoundary.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	var spans []string
	start := 0
	for _, m := range matches {
		// The match ends on the "[" that opens the next tag section;
		// keep it for the next span.
		next := m[1] - 1
		spans = append(spans, text[start:next])
		start = next
	}
	spans = append(spans, text[start:])

	out := spans[:0]
	for _, s := range spans {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
