package httpapi

import (
	"github.com/vovakirdan/wurdle/internal/game"
	"github.com/vovakirdan/wurdle/internal/wordle"
)

// TileView is one board cell. Letter is empty for unfilled cells.
type TileView struct {
	Letter string `json:"letter"`
	Status string `json:"status"`
}

// RowView is one board row.
type RowView struct {
	Tiles     []TileView `json:"tiles"`
	Submitted bool       `json:"submitted"`
}

// GameView is the JSON shape of a session. Target is only filled in once
// the game is decided.
type GameView struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	WordLength  int       `json:"wordLength"`
	Grid        []RowView `json:"grid"`
	Text        string    `json:"text"`
	Target      string    `json:"target,omitempty"`
	Share       string    `json:"share,omitempty"`
}

// GuessResponse is returned by a successful guess.
type GuessResponse struct {
	Guess RowView  `json:"guess"`
	View  GameView `json:"view"`
}

// ErrorResponse carries a stable error tag.
type ErrorResponse struct {
	Error string `json:"error"`
}

func rowView(g wordle.Guess) RowView {
	tiles := make([]TileView, len(g.Letters))
	for i, sl := range g.Letters {
		t := TileView{Status: sl.Status.String()}
		if !sl.Letter.IsBlank() {
			t.Letter = sl.Letter.String()
		}
		tiles[i] = t
	}
	return RowView{Tiles: tiles, Submitted: g.Submitted}
}

func gameView(id string, g *game.Game) GameView {
	e := g.Engine()
	cfg := e.Config()

	grid := e.DisplayGrid()
	rows := make([]RowView, len(grid))
	for i, row := range grid {
		rows[i] = rowView(row)
	}

	v := GameView{
		ID:          id,
		Source:      g.SourceID(),
		Status:      e.Status().String(),
		Attempts:    e.Attempts(),
		MaxAttempts: cfg.MaxAttempts,
		WordLength:  cfg.WordLength,
		Grid:        rows,
		Text:        e.InProgressText(),
	}
	if e.Status().Over() {
		v.Target = e.Target()
		v.Share = g.ShareText()
	}
	return v
}
