package game

import (
	"fmt"

	"github.com/vovakirdan/wurdle/internal/core"
	"github.com/vovakirdan/wurdle/internal/wordle"
)

const (
	tileWidth = 3 // " A "
	tileGap   = 1
	rowGap    = 1
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	_, contentH := g.minSize()
	top := max(0, (g.screenH-contentH)/2)

	dst.DrawTextCenteredColored(top, Title, core.ColorTitle)

	boardX := (g.screenW - g.boardWidth()) / 2
	y := top + 2
	if g.screenW >= g.boardWidth()+4 {
		frame := core.NewRect(boardX-2, y-1, g.boardWidth()+4, g.boardHeight()+2)
		dst.DrawBox(frame, core.ColorBorder)
	}
	g.renderBoard(dst, boardX, y)

	y += g.boardHeight() + 1
	g.renderMessage(dst, y)

	y += 2
	g.renderKeyboard(dst, y)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, "Window too small", core.ColorError)
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	for r, row := range g.engine.DisplayGrid() {
		y := y0 + r*(1+rowGap)
		for c, sl := range row.Letters {
			x := x0 + c*(tileWidth+tileGap)
			g.renderTile(dst, x, y, sl, g.reveal.hidden(r, c))
		}
	}
}

func (g *Game) renderTile(dst *core.Screen, x, y int, sl wordle.ScoredLetter, hidden bool) {
	switch {
	case sl.Status == wordle.Unfilled:
		dst.DrawTextColored(x, y, " · ", core.ColorBorder, core.ColorDefault)
	case hidden || sl.Status == wordle.InProgress:
		dst.DrawTextColored(x, y, " "+sl.Letter.String()+" ", core.ColorPending, core.ColorDefault)
	default:
		bg := TileColor(sl.Status)
		dst.FillRect(core.NewRect(x, y, tileWidth, 1), ' ', bg)
		dst.SetCell(x+tileWidth/2, y, core.Cell{Rune: rune(sl.Letter), BG: bg})
	}
}

func (g *Game) renderMessage(dst *core.Screen, y int) {
	msg, isErr := g.Message()
	switch {
	case isErr:
		dst.DrawTextCenteredColored(y, msg, core.ColorError)
	case msg != "":
		dst.DrawTextCenteredColored(y, msg, core.ColorTitle)
	default:
		line := fmt.Sprintf("Attempt %d/%d", g.engine.Attempts()+1, g.cfg.MaxAttempts)
		dst.DrawTextCenteredColored(y, line, core.ColorMuted)
	}
}

// renderKeyboard draws the letter keys colored by the best status seen.
func (g *Game) renderKeyboard(dst *core.Screen, y0 int) {
	hints := g.engine.LetterHints()
	for i, row := range keyboardRows {
		w := len(row)*2 - 1
		x0 := (g.screenW - w) / 2
		for j := 0; j < len(row); j++ {
			l := wordle.Letter(row[j])
			fg := core.ColorDefault
			if s, ok := hints[l]; ok {
				fg = KeyColor(s)
			}
			dst.SetCell(x0+j*2, y0+i, core.Cell{Rune: rune(l), FG: fg})
		}
	}
}

// TileColor maps a judged status to a tile background.
func TileColor(s wordle.LetterStatus) core.Color {
	switch s {
	case wordle.Correct:
		return core.ColorCorrect
	case wordle.Present:
		return core.ColorPresent
	case wordle.Absent:
		return core.ColorAbsent
	default:
		return core.ColorDefault
	}
}

// KeyColor maps a letter hint to a keyboard key foreground. Absent keys are
// dimmed rather than painted gray.
func KeyColor(s wordle.LetterStatus) core.Color {
	if s == wordle.Absent {
		return core.ColorMuted
	}
	return TileColor(s)
}

func (g *Game) boardWidth() int {
	return g.cfg.WordLength*(tileWidth+tileGap) - tileGap
}

func (g *Game) boardHeight() int {
	return g.cfg.MaxAttempts*(1+rowGap) - rowGap
}

// minSize returns the smallest screen that fits title, board, message and
// keyboard.
func (g *Game) minSize() (int, int) {
	keyboardW := len(keyboardRows[0])*2 - 1
	w := max(g.boardWidth(), keyboardW, len("Window too small")) + 2
	h := 2 + g.boardHeight() + 1 + 1 + 1 + len(keyboardRows)
	return w, h
}
