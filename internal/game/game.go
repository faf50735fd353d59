// Package game wraps a wordle.Engine into a playable session: it picks
// targets from a source, turns input events into engine calls, keeps the
// status message, animates the reveal of submitted rows, and renders the
// board into a core.Screen.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/wurdle/internal/core"
	"github.com/vovakirdan/wurdle/internal/source"
	"github.com/vovakirdan/wurdle/internal/wordle"
)

// Title is shown above the board and heads the share text.
const Title = "WURDLE"

// Options configures a new Game.
type Options struct {
	Wordle wordle.Config
	Dict   wordle.Dictionary // nil accepts any well-formed guess
	Source source.Source
	Now    func() time.Time // defaults to time.Now
}

// Game is one player's session. It is not safe for concurrent use.
type Game struct {
	cfg  wordle.Config
	dict wordle.Dictionary
	src  source.Source
	now  func() time.Time

	engine  *wordle.Engine
	started time.Time
	played  int

	message    string
	messageErr bool

	reveal reveal

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a session and starts its first game.
func New(opts Options) (*Game, error) {
	if opts.Source == nil {
		return nil, errors.New("game: no word source")
	}
	if err := opts.Wordle.Validate(); err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	g := &Game{
		cfg:  opts.Wordle,
		dict: opts.Dict,
		src:  opts.Source,
		now:  now,
	}
	rc := core.DefaultConfig()
	g.Resize(rc.ScreenW, rc.ScreenH)

	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts a new game with a fresh target from the source.
func (g *Game) Reset() error {
	g.started = g.now()
	target, err := g.src.Target(g.started)
	if err != nil {
		return fmt.Errorf("game: pick target: %w", err)
	}

	e, err := wordle.NewEngine(target, g.dict, g.cfg)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.engine = e
	g.played++
	g.message = ""
	g.messageErr = false
	g.reveal = reveal{}
	return nil
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *wordle.Engine {
	return g.engine
}

// SourceID returns the ID of the word source.
func (g *Game) SourceID() string {
	return g.src.ID()
}

// Played returns how many games this session has started.
func (g *Game) Played() int {
	return g.played
}

// Message returns the current status line and whether it reports an error.
func (g *Game) Message() (string, bool) {
	return g.message, g.messageErr
}

// HandleInput applies a submit or new-game event. Typed text reaches the
// game through SetText.
func (g *Game) HandleInput(ev core.InputEvent) {
	switch ev.Action {
	case core.ActionSubmit:
		_, _ = g.Submit()
	case core.ActionNewGame:
		if g.engine.Status().Over() {
			if err := g.Reset(); err != nil {
				g.setError(err.Error())
			}
		}
	}
}

// SetText forwards typed text to the engine, finishes a running reveal and
// clears a stale error.
func (g *Game) SetText(raw string) {
	if g.engine.Status().Over() {
		return
	}
	g.reveal.finish()
	g.engine.SetInProgressText(raw)
	if g.messageErr {
		g.message = ""
		g.messageErr = false
	}
}

// Submit submits the in-progress text and updates the status line.
func (g *Game) Submit() (wordle.Guess, error) {
	guess, err := g.engine.SubmitGuess()
	if err != nil {
		g.setError(errorMessage(err))
		return guess, err
	}

	g.reveal.start(g.engine.Attempts()-1, g.cfg.WordLength)

	switch g.engine.Status() {
	case wordle.StatusWon:
		g.setInfo(praise(g.engine.Attempts(), g.cfg.MaxAttempts))
	case wordle.StatusLost:
		g.setInfo("The word was " + g.engine.Target())
	default:
		g.message = ""
		g.messageErr = false
	}
	return guess, nil
}

// Tick advances the reveal animation. It reports whether an animation is
// still running.
func (g *Game) Tick() bool {
	return g.reveal.step()
}

// Revealing reports whether a submitted row is still being flipped.
func (g *Game) Revealing() bool {
	return g.reveal.active()
}

// ShareText returns the emoji summary of a finished game.
func (g *Game) ShareText() string {
	title := "Wurdle"
	if g.src.ID() == "daily" {
		title = fmt.Sprintf("Wurdle %d", source.PuzzleNumber(g.started))
	}
	return g.engine.ShareText(title)
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

func (g *Game) setError(msg string) {
	g.message = msg
	g.messageErr = true
}

func (g *Game) setInfo(msg string) {
	g.message = msg
	g.messageErr = false
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, wordle.ErrTooShort):
		return "Not enough letters"
	case errors.Is(err, wordle.ErrNotInDictionary):
		return "Not in word list"
	case errors.Is(err, wordle.ErrGameAlreadyOver):
		return "Game over, press ctrl+n for a new word"
	default:
		return strings.TrimPrefix(err.Error(), "wordle: ")
	}
}

var praises = []string{"Genius", "Magnificent", "Impressive", "Splendid", "Great", "Phew"}

// praise picks the win message for the attempt the game was won on. The
// last attempt always gets the final entry.
func praise(attempt, maxAttempts int) string {
	if attempt >= maxAttempts {
		return praises[len(praises)-1]
	}
	return praises[core.Clamp(attempt-1, 0, len(praises)-1)]
}
