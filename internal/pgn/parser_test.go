package pgn

import "testing"

func TestParseGameTags(t *testing.T) {
	span := `[Event "World Championship"]
[Site "London"]
[Date "1993.08.30"]
[Round "4"]
[White "Kasparov, Garry"]
[Black "Short, Nigel"]
[Result "1-0"]
[WhiteElo "2805"]
[Annotator "unknown"]

1. e4 e5 1-0
`
	g := ParseGame(span)
	meta := g.Metadata
	if meta.Event != "World Championship" || meta.Site != "London" || meta.Date != "1993.08.30" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.Round != "4" || meta.White != "Kasparov, Garry" || meta.Black != "Short, Nigel" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.Result != "1-0" {
		t.Fatalf("unexpected result: %q", meta.Result)
	}
	if g.Raw != span {
		t.Fatal("raw span not preserved")
	}
}

func TestParseGameAssignsIdentity(t *testing.T) {
	// Identity is generated, never derived from metadata, so games with
	// missing tags are still addressable and distinct.
	a := ParseGame("1. e4 e5 *")
	b := ParseGame("1. e4 e5 *")
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated identifiers")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct identifiers for distinct games")
	}
}

func TestParseMovetext(t *testing.T) {
	g := ParseGame("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 *")
	if len(g.Moves) != 3 {
		t.Fatalf("expected 3 move records, got %d", len(g.Moves))
	}
	want := []MoveRecord{
		{Number: 1, White: "e4", Black: "e5", Display: "1. e4 e5"},
		{Number: 2, White: "Nf3", Black: "Nc6", Display: "2. Nf3 Nc6"},
		{Number: 3, White: "Bb5", Black: "a6", Display: "3. Bb5 a6"},
	}
	for i, w := range want {
		if g.Moves[i] != w {
			t.Fatalf("move %d: expected %+v, got %+v", i, w, g.Moves[i])
		}
	}
}

func TestParseMovetextWithoutMarkers(t *testing.T) {
	// Numbering is reconstructed when the source omits markers.
	g := ParseGame("e4 e5 Nf3 Nc6")
	if len(g.Moves) != 2 {
		t.Fatalf("expected 2 move records, got %d", len(g.Moves))
	}
	if g.Moves[0].Number != 1 || g.Moves[1].Number != 2 {
		t.Fatalf("unexpected numbering: %d, %d", g.Moves[0].Number, g.Moves[1].Number)
	}
	if g.Moves[1].White != "Nf3" || g.Moves[1].Black != "Nc6" {
		t.Fatalf("unexpected record: %+v", g.Moves[1])
	}
}

func TestParseMovetextWrappedLines(t *testing.T) {
	g := ParseGame("[White \"A\"]\n\n1. e4\ne5 2. Nf3\nNc6 *\n")
	if len(g.Moves) != 2 {
		t.Fatalf("expected 2 move records, got %d", len(g.Moves))
	}
	if g.Moves[1].Display != "2. Nf3 Nc6" {
		t.Fatalf("unexpected display: %q", g.Moves[1].Display)
	}
}

func TestParseUnfinishedFinalMove(t *testing.T) {
	g := ParseGame("1. e4 e5 2. Nf3 *")
	if len(g.Moves) != 2 {
		t.Fatalf("expected 2 move records, got %d", len(g.Moves))
	}
	last := g.Moves[1]
	if last.White != "Nf3" || last.Black != "" {
		t.Fatalf("unexpected final record: %+v", last)
	}
	if last.Display != "2. Nf3" {
		t.Fatalf("unexpected display: %q", last.Display)
	}
}

func TestParseStripsResultTokens(t *testing.T) {
	for _, result := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		g := ParseGame("1. e4 e5 " + result)
		if len(g.Moves) != 1 {
			t.Fatalf("%s: expected 1 move record, got %d", result, len(g.Moves))
		}
		if g.Moves[0].Black != "e5" {
			t.Fatalf("%s: result token leaked into moves: %+v", result, g.Moves[0])
		}
	}
}

func TestParseEmptyMovetextStillYieldsGame(t *testing.T) {
	g := ParseGame("[White \"A\"]\n[Black \"B\"]\n\n*\n")
	if g == nil {
		t.Fatal("expected a game")
	}
	if g.Metadata.White != "A" || len(g.Moves) != 0 {
		t.Fatalf("unexpected game: %+v", g)
	}
}

func TestLoadTextMultipleGames(t *testing.T) {
	games := LoadText(gameOne + "\n" + gameTwo)
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Metadata.Event != "Casual Game" || games[1].Metadata.Event != "Rematch" {
		t.Fatalf("unexpected events: %q, %q", games[0].Metadata.Event, games[1].Metadata.Event)
	}
	if games[0].ID == games[1].ID {
		t.Fatal("expected distinct game identifiers")
	}
}
