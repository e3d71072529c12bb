package pgn

import "testing"

func TestEncodeMovesTruncation(t *testing.T) {
	moves := ParseGame("1. e4 e5 2. Nf3 Nc6 3. Bb5 *").Moves

	cases := []struct {
		plies int
		want  string
	}{
		{0, ""},
		{1, "1. e4"},
		{2, "1. e4 e5"},
		{3, "1. e4 e5 2. Nf3"},
		{4, "1. e4 e5 2. Nf3 Nc6"},
		{5, "1. e4 e5 2. Nf3 Nc6 3. Bb5"},
		{9, "1. e4 e5 2. Nf3 Nc6 3. Bb5"},
		{-1, "1. e4 e5 2. Nf3 Nc6 3. Bb5"},
	}
	for _, c := range cases {
		if got := EncodeMoves(moves, c.plies); got != c.want {
			t.Fatalf("plies %d: expected %q, got %q", c.plies, c.want, got)
		}
	}
}

func TestEncode(t *testing.T) {
	g := ParseGame("[White \"A\"]\n[Black \"B\"]\n[Result \"*\"]\n\n1. e4 e5 2. Nf3 Nc6 *\n")
	want := "[White \"A\"]\n[Black \"B\"]\n[Result \"*\"]\n\n1. e4 e5 2. Nf3 Nc6 *\n"
	if got := Encode(g.Metadata, g.Moves); got != want {
		t.Fatalf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestEncodeDefaultsResult(t *testing.T) {
	g := ParseGame("1. e4 *")
	if got := Encode(g.Metadata, g.Moves); got != "\n1. e4 *\n" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestEncodeTagsSkipsEmptyFields(t *testing.T) {
	got := EncodeTags(GameMetadata{White: "A", Result: "1-0"})
	if got != "[White \"A\"]\n[Result \"1-0\"]\n" {
		t.Fatalf("unexpected tags: %q", got)
	}
}
