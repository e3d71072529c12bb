package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chessmate/internal/chat"
	"github.com/rxtech-lab/chessmate/internal/pgn"
	"github.com/rxtech-lab/chessmate/internal/replay"
	"github.com/rxtech-lab/chessmate/internal/settings"
)

// Coach is the chat collaborator surface the UI needs. Nil disables the
// chat pane.
type Coach struct {
	Client *chat.Client
	Store  chat.Store
	Model  string
}

// App wires the board view, move list and chat pane around one replay
// session. Navigation happens on the UI goroutine only; the session is
// never touched concurrently.
type App struct {
	app     *tview.Application
	session *replay.Session
	logger  *zap.Logger

	games  []*pgn.Game
	active int

	boardUI  *BoardUI
	moveList *tview.TextView
	status   *tview.TextView
	chatView *tview.TextView
	chatIn   *tview.InputField
	pages    *tview.Pages

	coach *Coach
	save  func(name, content string) error
}

// NewApp builds the UI around the given games. saveFunc receives the
// serialized PGN when the user asks to write the active game out.
func NewApp(games []*pgn.Game, session *replay.Session, s settings.Settings, coach *Coach, saveFunc func(name, content string) error, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		app:     tview.NewApplication(),
		session: session,
		logger:  logger,
		games:   games,
		coach:   coach,
		save:    saveFunc,
	}

	a.boardUI = NewBoardUI(session, s)
	a.moveList = tview.NewTextView().SetDynamicColors(true)
	a.moveList.SetBorder(true).SetTitle(" Moves ")
	a.status = tview.NewTextView().SetDynamicColors(true)
	a.chatView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	a.chatView.SetBorder(true).SetTitle(" Coach ")
	a.chatIn = tview.NewInputField().SetLabel("ask: ")
	a.chatIn.SetDoneFunc(a.onChatSubmit)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.moveList, 0, 1, false)
	if coach != nil {
		right.AddItem(a.chatView, 0, 1, false).
			AddItem(a.chatIn, 1, 0, false)
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(a.boardUI.Box, 20, 0, true).
			AddItem(right, 0, 1, false), 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages = tview.NewPages().AddPage("main", root, true, true)
	a.app.SetRoot(a.pages, true)
	a.app.SetInputCapture(a.onKey)

	if len(games) > 0 {
		a.loadGame(0)
	}
	return a
}

// Run blocks until the user quits.
func (a *App) Run() error {
	return a.app.Run()
}

func (a *App) onKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.chatIn != nil && a.chatIn.HasFocus() {
		if ev.Key() == tcell.KeyEscape {
			a.app.SetFocus(a.boardUI.Box)
			return nil
		}
		return ev
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		a.session.Previous()
	case tcell.KeyRight:
		a.session.Next()
	case tcell.KeyHome:
		a.session.First()
	case tcell.KeyEnd:
		a.session.Last()
	case tcell.KeyTab:
		a.loadGame((a.active + 1) % max(len(a.games), 1))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'f':
			a.boardUI.Flip()
		case 'g':
			a.session.First()
		case 'G':
			a.session.Last()
		case 'h':
			a.session.Previous()
		case 'l':
			a.session.Next()
		case 'w':
			a.writeActiveGame()
		case 'c':
			if a.coach != nil {
				a.app.SetFocus(a.chatIn)
				return nil
			}
		}
	default:
		return ev
	}

	a.refresh()
	return nil
}

func (a *App) loadGame(i int) {
	if i < 0 || i >= len(a.games) {
		return
	}
	a.active = i
	a.session.LoadGame(a.games[i])
	a.renderChatHistory()
	a.refresh()
}

func (a *App) refresh() {
	pos := a.session.CurrentPosition()
	meta := a.session.Metadata()

	var moves strings.Builder
	cursorRecord := int(pos.Cursor + 0.5) // record currently in progress
	for _, rec := range a.session.Moves() {
		if rec.Number == cursorRecord && pos.Cursor > 0 {
			fmt.Fprintf(&moves, "[yellow]%s[-]\n", rec.Display)
			continue
		}
		moves.WriteString(rec.Display)
		moves.WriteString("\n")
	}
	a.moveList.SetText(moves.String())

	a.status.SetText(fmt.Sprintf(
		" %s vs %s  |  game %d/%d  |  ply %.1f  |  ←/→ move, Home/End jump, Tab game, c chat, w write, q quit",
		orDash(meta.White), orDash(meta.Black), a.active+1, len(a.games), pos.Cursor))
}

func (a *App) writeActiveGame() {
	if a.save == nil || len(a.games) == 0 {
		return
	}
	name := fmt.Sprintf("game-%d.pgn", a.active+1)
	if err := a.save(name, a.session.Serialize()); err != nil {
		a.logger.Error("write game", zap.String("name", name), zap.Error(err))
		a.status.SetText(fmt.Sprintf(" write failed: %v", err))
		return
	}
	a.status.SetText(fmt.Sprintf(" wrote %s", name))
}

func (a *App) onChatSubmit(key tcell.Key) {
	if key != tcell.KeyEnter || a.coach == nil {
		return
	}
	question := strings.TrimSpace(a.chatIn.GetText())
	if question == "" {
		return
	}
	a.chatIn.SetText("")
	a.appendChatLine("[green]you[-]: " + question)

	gameID := a.games[a.active].ID
	meta := a.session.Metadata()
	pgnContext := a.session.MovesUpTo(a.session.Cursor())

	go a.askCoach(gameID, meta, pgnContext, question)
}

// askCoach runs off the UI goroutine; it only uses values captured from
// the session beforehand.
func (a *App) askCoach(gameID string, meta pgn.GameMetadata, pgnContext, question string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	history, err := a.coach.Store.History(ctx, gameID)
	if err != nil {
		a.logger.Warn("load transcript", zap.Error(err))
	}

	msgs := chat.BuildMessages(meta, pgnContext, history, question)
	reply, err := a.coach.Client.Ask(ctx, chat.AskRequest{Model: a.coach.Model, Messages: msgs})
	if err != nil {
		a.logger.Error("coach request", zap.Error(err))
		a.app.QueueUpdateDraw(func() {
			a.appendChatLine(fmt.Sprintf("[red]coach unavailable: %v[-]", err))
		})
		return
	}

	if err := a.coach.Store.Append(ctx, gameID, chat.Message{Role: "user", Content: question}); err != nil {
		a.logger.Warn("store transcript", zap.Error(err))
	}
	if err := a.coach.Store.Append(ctx, gameID, chat.Message{Role: "assistant", Content: reply}); err != nil {
		a.logger.Warn("store transcript", zap.Error(err))
	}

	a.app.QueueUpdateDraw(func() {
		a.appendChatLine("[blue]coach[-]: " + reply)
	})
}

func (a *App) renderChatHistory() {
	a.chatView.SetText("")
	if a.coach == nil || len(a.games) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	history, err := a.coach.Store.History(ctx, a.games[a.active].ID)
	if err != nil {
		a.logger.Warn("load transcript", zap.Error(err))
		return
	}
	for _, m := range history {
		label := "[green]you[-]"
		if m.Role == "assistant" {
			label = "[blue]coach[-]"
		}
		a.appendChatLine(label + ": " + m.Content)
	}
}

func (a *App) appendChatLine(line string) {
	fmt.Fprintln(a.chatView, line)
	a.chatView.ScrollToEnd()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
