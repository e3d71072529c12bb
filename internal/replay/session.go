package replay

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rxtech-lab/chessmate/internal/board"
	"github.com/rxtech-lab/chessmate/internal/pgn"
	"github.com/rxtech-lab/chessmate/pkg/replaydto"
)

// Session owns the replay state of one active game: its metadata, the
// copied move list, the ply cursor, the live board, and the most recent
// move's square pair. A Session has a single logical owner; collaborators
// only ever see copies taken between navigation calls.
//
// Cursor semantics: the cursor advances in 0.5 steps. Integer values mean
// "just after black's move N" (0 is the initial position); half values
// N+0.5 mean "just after white's move N+1, before black's reply". The
// board always equals a full replay of every half-move strictly before
// the cursor.
type Session struct {
	logger *zap.Logger

	meta  pgn.GameMetadata
	moves []pgn.MoveRecord

	plies    int // half-moves replayed; cursor = plies/2
	board    board.Board
	lastFrom board.Square
	lastTo   board.Square
}

// NewSession returns an empty session showing the starting position.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger: logger,
		board:  board.StartingPosition(),
	}
}

// LoadGame replaces the session state wholesale: metadata and move list
// come from g, the cursor resets to the initial position. A nil game
// clears the session.
func (s *Session) LoadGame(g *pgn.Game) {
	if g == nil {
		s.meta = pgn.GameMetadata{}
		s.moves = nil
	} else {
		s.meta = g.Metadata
		s.moves = append([]pgn.MoveRecord(nil), g.Moves...)
	}
	s.replayTo(0)
}

// Metadata returns the active game's metadata.
func (s *Session) Metadata() pgn.GameMetadata { return s.meta }

// Moves returns a copy of the active game's move history.
func (s *Session) Moves() []pgn.MoveRecord {
	return append([]pgn.MoveRecord(nil), s.moves...)
}

// Cursor returns the current replay position in half-move units of 0.5.
func (s *Session) Cursor() float64 { return float64(s.plies) / 2 }

// HasPreviousMove reports whether the cursor can move backward.
func (s *Session) HasPreviousMove() bool { return s.plies > 0 }

// HasNextMove reports whether a recorded half-move exists beyond the cursor.
func (s *Session) HasNextMove() bool {
	idx := s.plies / 2
	if idx >= len(s.moves) {
		return false
	}
	if s.plies%2 == 0 {
		return s.moves[idx].White != ""
	}
	return s.moves[idx].Black != ""
}

// First resets to the initial position.
func (s *Session) First() { s.replayTo(0) }

// Last replays the full recorded game. The cursor lands on a half value
// when the final record has no black reply.
func (s *Session) Last() { s.replayTo(s.totalPlies()) }

// Next advances the cursor by half a move, applying the upcoming white or
// black half. A no-op at the end of the game.
func (s *Session) Next() {
	if !s.HasNextMove() {
		return
	}
	s.applyHalf(s.plies)
	s.plies++
}

// Previous steps the cursor back by half a move, re-deriving the board by
// replaying from the initial position. O(cursor), which is fine for the
// few hundred plies a game can hold. A no-op at the start.
func (s *Session) Previous() {
	if s.plies <= 0 {
		return
	}
	s.replayTo(s.plies - 1)
}

// Board returns a copy of the live board.
func (s *Session) Board() board.Board { return s.board.Copy() }

// CurrentPosition returns the collaborator-facing snapshot of the session.
func (s *Session) CurrentPosition() replaydto.Position {
	squares := make(map[string]replaydto.Piece, len(s.board))
	for sq, p := range s.board {
		squares[string(sq)] = replaydto.Piece{Side: p.Side.String(), Kind: p.Kind.String()}
	}
	return replaydto.Position{
		Board:       squares,
		Cursor:      s.Cursor(),
		HasPrevious: s.HasPreviousMove(),
		HasNext:     s.HasNextMove(),
		LastFrom:    string(s.lastFrom),
		LastTo:      string(s.lastTo),
	}
}

// MovesUpTo reconstructs PGN text (tags plus truncated move list) for the
// given cursor value, mirroring its half-move granularity exactly. Used by
// the chat collaborator as game context.
func (s *Session) MovesUpTo(cursor float64) string {
	plies := int(cursor * 2)
	if total := s.totalPlies(); plies > total {
		plies = total
	}
	if plies < 0 {
		plies = 0
	}

	var b strings.Builder
	b.WriteString(pgn.EncodeTags(s.meta))
	if movetext := pgn.EncodeMoves(s.moves, plies); movetext != "" {
		b.WriteString("\n")
		b.WriteString(movetext)
		b.WriteString("\n")
	}
	return b.String()
}

// Serialize reconstructs the full PGN document of the active game for
// save-to-file use.
func (s *Session) Serialize() string {
	return pgn.Encode(s.meta, s.moves)
}

// MakeMove always fails: the engine replays recorded games and never
// accepts interactive moves.
func (s *Session) MakeMove(string) error {
	return replaydto.ErrMoveInputUnsupported
}

// totalPlies is the number of recorded half-moves.
func (s *Session) totalPlies() int {
	n := len(s.moves) * 2
	if n > 0 && s.moves[len(s.moves)-1].Black == "" {
		n--
	}
	return n
}

// replayTo rebuilds the board from the initial position by applying every
// half-move strictly before ply n. The board is never left partially
// updated: an unresolved token leaves it unchanged for that half-move and
// replay continues.
func (s *Session) replayTo(n int) {
	s.board = board.StartingPosition()
	s.lastFrom, s.lastTo = "", ""
	for i := 0; i < n; i++ {
		s.applyHalf(i)
	}
	s.plies = n
}

func (s *Session) applyHalf(i int) {
	rec := s.moves[i/2]
	token, side := rec.White, board.White
	if i%2 == 1 {
		token, side = rec.Black, board.Black
	}

	from, to, err := Apply(s.board, side, token)
	if err != nil {
		s.logger.Warn("move did not resolve, board unchanged",
			zap.Int("ply", i),
			zap.String("token", token),
			zap.Error(err))
		return
	}
	s.lastFrom, s.lastTo = from, to
}
