// Package tui renders the replay session in the terminal and maps key
// presses to navigation. It only ever reads engine state through
// snapshots taken between navigation calls.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rxtech-lab/chessmate/internal/board"
	"github.com/rxtech-lab/chessmate/internal/replay"
	"github.com/rxtech-lab/chessmate/internal/settings"
)

// BoardUI draws the live board of a replay session, two terminal cells
// per square, with the last-move pair highlighted.
type BoardUI struct {
	Box     *tview.Box
	session *replay.Session
	theme   settings.Theme
	flipped bool

	whiteGlyphs []rune
	blackGlyphs []rune
}

func NewBoardUI(session *replay.Session, s settings.Settings) *BoardUI {
	ui := &BoardUI{
		Box:         tview.NewBox(),
		session:     session,
		theme:       s.Theme,
		flipped:     s.FlipBoard,
		whiteGlyphs: []rune(s.Theme.WhiteGlyphs),
		blackGlyphs: []rune(s.Theme.BlackGlyphs),
	}
	ui.Box.SetDrawFunc(ui.draw)
	return ui
}

// Flip toggles board orientation.
func (ui *BoardUI) Flip() { ui.flipped = !ui.flipped }

func (ui *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	b := ui.session.Board()
	pos := ui.session.CurrentPosition()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			file, rank := col, 7-row
			if ui.flipped {
				file, rank = 7-col, row
			}
			sq := board.NewSquare(file, rank)

			bg := tcell.PaletteColor(ui.theme.DarkSquare)
			if (file+rank)%2 == 1 {
				bg = tcell.PaletteColor(ui.theme.LightSquare)
			}
			switch string(sq) {
			case pos.LastFrom:
				bg = tcell.PaletteColor(ui.theme.HighlightFrom)
			case pos.LastTo:
				bg = tcell.PaletteColor(ui.theme.HighlightTo)
			}

			glyph := ' '
			fg := tcell.ColorBlack
			if p, ok := b.Piece(sq); ok {
				glyph = ui.glyph(p)
				if p.Side == board.White {
					fg = tcell.ColorWhite
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(x+2*col, y+row, glyph, nil, style)
			screen.SetContent(x+2*col+1, y+row, ' ', nil, style)
		}
	}

	// Coordinate labels along the bottom and right edges.
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for col := 0; col < 8; col++ {
		file := col
		if ui.flipped {
			file = 7 - col
		}
		screen.SetContent(x+2*col, y+8, rune('a'+file), nil, labelStyle)
	}
	for row := 0; row < 8; row++ {
		rank := 7 - row
		if ui.flipped {
			rank = row
		}
		screen.SetContent(x+16, y+row, rune('1'+rank), nil, labelStyle)
	}

	return x, y, width, height
}

func (ui *BoardUI) glyph(p board.Piece) rune {
	glyphs := ui.whiteGlyphs
	if p.Side == board.Black {
		glyphs = ui.blackGlyphs
	}
	if int(p.Kind) < len(glyphs) {
		return glyphs[p.Kind]
	}
	return '?'
}
