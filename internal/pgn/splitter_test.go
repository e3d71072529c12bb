package pgn

import (
	"strings"
	"testing"
)

const gameOne = `[Event "Casual Game"]
[White "A"]
[Black "B"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 1-0
`

const gameTwo = `[Event "Rematch"]
[White "B"]
[Black "A"]
[Result "0-1"]

1. d4 d5 2. c4 e6 0-1
`

const gameThree = `[Event "Decider"]
[White "A"]
[Black "B"]
[Result "1/2-1/2"]

1. Nf3 Nf6 1/2-1/2
`

func TestSplitSingleGame(t *testing.T) {
	spans := Split(gameOne)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0] != gameOne {
		t.Fatalf("span does not match source:\n%q", spans[0])
	}
}

func TestSplitMultiGameRoundTrip(t *testing.T) {
	source := gameOne + "\n" + gameTwo + "\n" + gameThree
	spans := Split(source)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if strings.Join(spans, "") != source {
		t.Fatal("concatenated spans do not reconstruct the source")
	}
	for i, want := range []string{"Casual Game", "Rematch", "Decider"} {
		if !strings.Contains(spans[i], want) {
			t.Fatalf("span %d: expected event %q in %q", i, want, spans[i])
		}
	}
}

func TestSplitNoBoundaryTreatsInputAsOneGame(t *testing.T) {
	// Movetext without a result token never produces a boundary match.
	source := "[White \"A\"]\n\n1. e4 e5 2. Nf3"
	spans := Split(source)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
}

func TestSplitNormalizesLineEndings(t *testing.T) {
	source := strings.ReplaceAll(gameOne, "\n", "\r\n") + "\r\n" + strings.ReplaceAll(gameTwo, "\n", "\r\n")
	spans := Split(source)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if strings.Contains(spans[0], "\r") {
		t.Fatal("span still carries carriage returns")
	}
}

func TestSplitDiscardsWhitespaceOnlySpans(t *testing.T) {
	if spans := Split("   \n\n  \n"); spans != nil {
		t.Fatalf("expected no spans, got %d", len(spans))
	}

	source := gameOne + "\n\n   \n"
	spans := Split(source)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
}
