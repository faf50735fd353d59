package wordle

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func newTestEngine(t *testing.T, target string, dict Dictionary) *Engine {
	t.Helper()
	e, err := NewEngine(target, dict, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine(%q) failed: %v", target, err)
	}
	return e
}

func submit(t *testing.T, e *Engine, word string) Guess {
	t.Helper()
	e.SetInProgressText(word)
	g, err := e.SubmitGuess()
	if err != nil {
		t.Fatalf("SubmitGuess(%q) failed: %v", word, err)
	}
	return g
}

func TestNewEngineRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		cfg    Config
	}{
		{"zero word length", "CRANE", Config{WordLength: 0, MaxAttempts: 6}},
		{"negative attempts", "CRANE", Config{WordLength: 5, MaxAttempts: -1}},
		{"target too short", "CRAN", DefaultConfig()},
		{"target with digit", "CR4NE", DefaultConfig()},
		{"target non-ascii", "CRÄNE", DefaultConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewEngine(tc.target, nil, tc.cfg); err == nil {
				t.Errorf("NewEngine(%q, %+v) should fail", tc.target, tc.cfg)
			}
		})
	}
}

func TestNewEngineNormalizesTarget(t *testing.T) {
	e := newTestEngine(t, "crane", nil)
	if e.Target() != "CRANE" {
		t.Errorf("Target() = %q, expected CRANE", e.Target())
	}
	if e.Status() != StatusInProgress {
		t.Errorf("Status() = %v, expected in_progress", e.Status())
	}
}

func TestSetInProgressText(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"ab", "AB"},
		{"TOOLONGWORD", "TOOLO"},
		{"c-r a.n", "CRAN"},
		{"1234", ""},
		{"héllo", "HLLO"},
		{"  c r a n e s", "CRANE"},
		{"", ""},
	}

	e := newTestEngine(t, "CRANE", nil)
	for _, tc := range tests {
		e.SetInProgressText(tc.raw)
		if got := e.InProgressText(); got != tc.expected {
			t.Errorf("SetInProgressText(%q) stored %q, expected %q", tc.raw, got, tc.expected)
		}
	}
}

func TestSetInProgressTextOverwrites(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	e.SetInProgressText("AB")
	e.SetInProgressText("C")
	if got := e.InProgressText(); got != "C" {
		t.Errorf("InProgressText() = %q, expected %q", got, "C")
	}
}

func TestSubmitTooShort(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	e.SetInProgressText("CRA")

	_, err := e.SubmitGuess()
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("SubmitGuess() error = %v, expected ErrTooShort", err)
	}
	if e.Attempts() != 0 {
		t.Errorf("Attempts() = %d after failed submit, expected 0", e.Attempts())
	}
	if e.InProgressText() != "CRA" {
		t.Errorf("InProgressText() = %q after failed submit, expected CRA", e.InProgressText())
	}
}

func TestSubmitNotInDictionary(t *testing.T) {
	dict := NewDictionary("crane", "slate", "adieu")
	e := newTestEngine(t, "CRANE", dict)

	e.SetInProgressText("ZZZZZ")
	_, err := e.SubmitGuess()
	if !errors.Is(err, ErrNotInDictionary) {
		t.Fatalf("SubmitGuess() error = %v, expected ErrNotInDictionary", err)
	}
	if e.Attempts() != 0 || e.InProgressText() != "ZZZZZ" {
		t.Errorf("state changed on rejected submit: attempts=%d text=%q", e.Attempts(), e.InProgressText())
	}

	submit(t, e, "slate")
	if e.Attempts() != 1 {
		t.Errorf("Attempts() = %d, expected 1", e.Attempts())
	}
}

func TestSubmitOpenMode(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	g := submit(t, e, "ZZZZZ")
	if g.Word() != "ZZZZZ" {
		t.Errorf("Word() = %q, expected ZZZZZ", g.Word())
	}
}

func TestSubmitClearsText(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	submit(t, e, "SLATE")
	if e.InProgressText() != "" {
		t.Errorf("InProgressText() = %q after submit, expected empty", e.InProgressText())
	}
}

func TestWinOnExactGuess(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	g := submit(t, e, "crane")

	for i, sl := range g.Letters {
		if sl.Status != Correct {
			t.Errorf("letter %d status = %v, expected correct", i, sl.Status)
		}
	}
	if e.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won", e.Status())
	}
}

func TestLoseAfterMaxAttempts(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	for i := 0; i < 6; i++ {
		submit(t, e, "FJORD")
	}
	if e.Status() != StatusLost {
		t.Fatalf("Status() = %v, expected lost", e.Status())
	}

	e.SetInProgressText("CRANE")
	if e.InProgressText() != "" {
		t.Errorf("SetInProgressText should be ignored after game over, got %q", e.InProgressText())
	}

	before := e.History()
	_, err := e.SubmitGuess()
	if !errors.Is(err, ErrGameAlreadyOver) {
		t.Errorf("SubmitGuess() error = %v, expected ErrGameAlreadyOver", err)
	}
	if !reflect.DeepEqual(before, e.History()) {
		t.Error("history changed after submit on finished game")
	}
}

func TestWinOnFinalAttempt(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	for i := 0; i < 5; i++ {
		submit(t, e, "FJORD")
	}
	submit(t, e, "CRANE")
	if e.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won on final attempt", e.Status())
	}
}

func TestNoSubmitAfterWin(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	submit(t, e, "CRANE")

	e.SetInProgressText("SLATE")
	if _, err := e.SubmitGuess(); !errors.Is(err, ErrGameAlreadyOver) {
		t.Errorf("SubmitGuess() error = %v, expected ErrGameAlreadyOver", err)
	}
	if e.Attempts() != 1 {
		t.Errorf("Attempts() = %d, expected 1", e.Attempts())
	}
}

func TestDisplayGrid(t *testing.T) {
	e := newTestEngine(t, "SPEED", nil)
	submit(t, e, "ERASE")
	e.SetInProgressText("SP")

	grid := e.DisplayGrid()
	if len(grid) != 6 {
		t.Fatalf("len(grid) = %d, expected 6", len(grid))
	}

	// Row 0: submitted
	if !grid[0].Submitted || grid[0].Word() != "ERASE" {
		t.Errorf("row 0 = %+v, expected submitted ERASE", grid[0])
	}
	if !reflect.DeepEqual(grid[0].Statuses(), []LetterStatus{P, A, A, P, P}) {
		t.Errorf("row 0 statuses = %v", grid[0].Statuses())
	}

	// Row 1: in progress, padded
	expected := []LetterStatus{InProgress, InProgress, Unfilled, Unfilled, Unfilled}
	if grid[1].Submitted {
		t.Error("row 1 should not be submitted")
	}
	if !reflect.DeepEqual(grid[1].Statuses(), expected) {
		t.Errorf("row 1 statuses = %v, expected %v", grid[1].Statuses(), expected)
	}
	if grid[1].Word() != "SP   " {
		t.Errorf("row 1 word = %q, expected %q", grid[1].Word(), "SP   ")
	}

	// Remaining rows: blank
	for r := 2; r < 6; r++ {
		for c, sl := range grid[r].Letters {
			if sl.Status != Unfilled || !sl.Letter.IsBlank() {
				t.Errorf("row %d col %d = %+v, expected blank", r, c, sl)
			}
		}
	}
}

func TestDisplayGridAfterWinHasNoInputRow(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	submit(t, e, "CRANE")

	grid := e.DisplayGrid()
	for r := 1; r < len(grid); r++ {
		for _, sl := range grid[r].Letters {
			if sl.Status != Unfilled {
				t.Errorf("row %d has status %v after win, expected unfilled", r, sl.Status)
			}
		}
	}
}

func TestDisplayGridIdempotent(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	submit(t, e, "SLATE")
	e.SetInProgressText("CR")

	first := e.DisplayGrid()
	second := e.DisplayGrid()
	if !reflect.DeepEqual(first, second) {
		t.Error("DisplayGrid() differs between calls with no mutation")
	}
}

func TestDisplayGridReflectsKeystrokes(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	e.SetInProgressText("C")
	before := e.DisplayGrid()
	e.SetInProgressText("CR")
	after := e.DisplayGrid()

	if reflect.DeepEqual(before, after) {
		t.Error("DisplayGrid() should change when the in-progress text changes")
	}
}

func TestDisplayGridReturnsCopies(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	submit(t, e, "SLATE")

	grid := e.DisplayGrid()
	grid[0].Letters[0] = ScoredLetter{Letter: 'Z', Status: Correct}

	again := e.DisplayGrid()
	if again[0].Letters[0].Letter != 'S' {
		t.Error("mutating DisplayGrid() output changed engine history")
	}
}

func TestSubmittedRowsOnlyJudged(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	for _, w := range []string{"SLATE", "ROUND", "CRANE"} {
		submit(t, e, w)
	}
	for i, g := range e.History() {
		for j, sl := range g.Letters {
			if !sl.Status.Judged() {
				t.Errorf("history[%d][%d] status = %v, expected a judgment", i, j, sl.Status)
			}
		}
	}
}

func TestLetterHints(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	submit(t, e, "TRACE") // T absent, R correct, A correct, C present, E correct
	submit(t, e, "CHAMP") // C correct, H absent, A correct, M absent, P absent

	hints := e.LetterHints()
	expected := map[Letter]LetterStatus{
		'T': Absent,
		'R': Correct,
		'A': Correct,
		'C': Correct,
		'E': Correct,
		'H': Absent,
		'M': Absent,
		'P': Absent,
	}
	if !reflect.DeepEqual(hints, expected) {
		t.Errorf("LetterHints() = %v, expected %v", hints, expected)
	}
	if _, ok := hints['Z']; ok {
		t.Error("unsubmitted letter should not have a hint")
	}
}

func TestCustomDimensions(t *testing.T) {
	cfg := Config{WordLength: 3, MaxAttempts: 2}
	e, err := NewEngine("CAT", nil, cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	e.SetInProgressText("DOGS")
	if e.InProgressText() != "DOG" {
		t.Errorf("InProgressText() = %q, expected DOG", e.InProgressText())
	}
	if _, err := e.SubmitGuess(); err != nil {
		t.Fatalf("SubmitGuess failed: %v", err)
	}
	submit(t, e, "COT")
	if e.Status() != StatusLost {
		t.Errorf("Status() = %v, expected lost after 2 attempts", e.Status())
	}
	if len(e.DisplayGrid()) != 2 {
		t.Errorf("len(DisplayGrid()) = %d, expected 2", len(e.DisplayGrid()))
	}
}

func TestShareText(t *testing.T) {
	e := newTestEngine(t, "CRANE", nil)
	if e.ShareText("Wurdle") != "" {
		t.Error("ShareText should be empty while in progress")
	}

	submit(t, e, "SLATE")
	submit(t, e, "CRANE")

	share := e.ShareText("Wurdle")
	lines := strings.Split(share, "\n")
	if len(lines) != 3 {
		t.Fatalf("ShareText lines = %d, expected 3:\n%s", len(lines), share)
	}
	if lines[0] != "Wurdle 2/6" {
		t.Errorf("header = %q, expected %q", lines[0], "Wurdle 2/6")
	}
	if lines[2] != "🟩🟩🟩🟩🟩" {
		t.Errorf("last row = %q", lines[2])
	}
	// SLATE vs CRANE: S absent, L absent, A correct, T absent, E correct
	if lines[1] != "⬛⬛🟩⬛🟩" {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{ErrTooShort, "too_short"},
		{ErrNotInDictionary, "not_in_dictionary"},
		{ErrGameAlreadyOver, "game_over"},
		{errors.New("boom"), "internal"},
	}
	for _, tc := range tests {
		if got := ErrorKind(tc.err); got != tc.expected {
			t.Errorf("ErrorKind(%v) = %q, expected %q", tc.err, got, tc.expected)
		}
	}
}
