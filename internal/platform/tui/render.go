package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette maps screen color roles to lipgloss styles for one renderer.
// SSH sessions each get their own palette so color detection follows the
// client's terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds the styles of theme on r. A nil renderer uses the
// default one bound to stdout.
func NewPalette(r *lipgloss.Renderer, theme config.Theme) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	base := r.NewStyle().Background(lipgloss.Color(theme.Background))
	fg := func(hex string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(hex))
	}

	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:   fg(theme.Text),
		core.ColorText:      fg(theme.Text),
		core.ColorBorder:    fg(theme.Border),
		core.ColorSnakeHead: fg(theme.Head).Bold(true),
		core.ColorSnakeBody: fg(theme.Snake),
		core.ColorFood:      fg(theme.Food).Bold(true),
		core.ColorAlert:     fg(theme.Text).Bold(true),
		core.ColorDim:       fg(theme.Border).Faint(true),
	}}
}

// Style returns the style of a color role, falling back to ColorDefault.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
