package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/wurdle/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(2, 1, "ABC", core.ColorDefault, core.ColorCorrect)
	s.DrawTextCenteredColored(2, "XY", core.ColorTitle)

	out := RenderScreen(s, testTheme())
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("line 0 = %q, expected prefix %q", lines[0], "plain")
	}
	if !strings.Contains(lines[1], "ABC") {
		t.Errorf("line 1 = %q, expected to contain %q", lines[1], "ABC")
	}
	if !strings.Contains(lines[2], "XY") {
		t.Errorf("line 2 = %q, expected to contain %q", lines[2], "XY")
	}
}

func TestRenderScreenDefaultCellsUnstyled(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 1, "ab")

	got := RenderScreen(s, testTheme())
	expected := "    \nab  "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestThemeStyleCached(t *testing.T) {
	th := testTheme()
	th.Style(core.ColorCorrect, core.ColorCorrect)
	th.Style(core.ColorCorrect, core.ColorCorrect)
	th.Style(core.ColorAbsent, core.ColorDefault)
	if len(th.cache) != 2 {
		t.Errorf("cache size = %d, expected 2", len(th.cache))
	}
}
