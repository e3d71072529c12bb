package chat

import (
	"fmt"
	"strings"

	"github.com/rxtech-lab/chessmate/internal/pgn"
)

const systemPrompt = `You are a friendly chess coach reviewing a recorded game with a student.
The student is stepping through the game move by move. The PGN below covers
only the moves played so far; do not discuss moves beyond it. Keep replies
short (1-3 sentences) and concrete.`

// BuildMessages assembles the conversation sent to the coach: a system
// prompt carrying the game context truncated at the replay cursor, the
// stored transcript, and the student's new question.
func BuildMessages(meta pgn.GameMetadata, pgnContext string, history []Message, question string) []Message {
	var ctx strings.Builder
	ctx.WriteString(systemPrompt)
	ctx.WriteString("\n\n")
	if meta.White != "" || meta.Black != "" {
		fmt.Fprintf(&ctx, "Game: %s vs %s.\n", orUnknown(meta.White), orUnknown(meta.Black))
	}
	if meta.Event != "" {
		fmt.Fprintf(&ctx, "Event: %s.\n", meta.Event)
	}
	ctx.WriteString("Moves so far:\n")
	if strings.TrimSpace(pgnContext) == "" {
		ctx.WriteString("(none, at the starting position)\n")
	} else {
		ctx.WriteString(pgnContext)
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: ctx.String()})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: question})
	return messages
}

func orUnknown(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}
