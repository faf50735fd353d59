package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wurdle/internal/config"
	"github.com/vovakirdan/wurdle/internal/core"
)

// Theme maps semantic screen colors to lipgloss styles.
type Theme struct {
	renderer *lipgloss.Renderer
	fg       map[core.Color]lipgloss.TerminalColor
	bg       map[core.Color]lipgloss.TerminalColor
	cache    map[[2]core.Color]lipgloss.Style
}

// NewTheme builds a theme from configured colors. A nil renderer uses the
// default (local terminal) renderer; SSH sessions pass their own.
func NewTheme(r *lipgloss.Renderer, tc config.ThemeConfig) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	c := func(s string) lipgloss.TerminalColor {
		if s == "" {
			return lipgloss.NoColor{}
		}
		return lipgloss.Color(s)
	}

	return &Theme{
		renderer: r,
		fg: map[core.Color]lipgloss.TerminalColor{
			core.ColorCorrect: c(tc.Correct),
			core.ColorPresent: c(tc.Present),
			core.ColorAbsent:  c(tc.Absent),
			core.ColorPending: c(tc.Pending),
			core.ColorBorder:  c(tc.Border),
			core.ColorError:   c(tc.Error),
			core.ColorMuted:   c(tc.Border),
		},
		bg: map[core.Color]lipgloss.TerminalColor{
			core.ColorCorrect: c(tc.Correct),
			core.ColorPresent: c(tc.Present),
			core.ColorAbsent:  c(tc.Absent),
		},
		cache: make(map[[2]core.Color]lipgloss.Style),
	}
}

// Style returns the style for a foreground/background pair.
func (t *Theme) Style(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if st, ok := t.cache[k]; ok {
		return st
	}

	st := t.renderer.NewStyle()
	if c, ok := t.fg[fg]; ok {
		st = st.Foreground(c)
	}
	if fg == core.ColorTitle || fg == core.ColorPending {
		st = st.Bold(true)
	}
	if c, ok := t.bg[bg]; ok {
		st = st.Background(c).Foreground(lipgloss.Color("0")).Bold(true)
	}

	t.cache[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, t *Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG == core.ColorDefault && start.BG == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(t.Style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
