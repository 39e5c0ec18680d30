package tui

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

func newTestModel(t *testing.T, b snake.Board) (Model, *loop.Driver) {
	t.Helper()
	sim := snake.NewSim(b, rand.New(rand.NewSource(1)))
	driver := loop.New(sim, nil, nil)

	cfg := config.Default()
	m := NewModel(driver, Options{
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickInterval: cfg.TickInterval},
		Keys:     cfg.Keys,
		Theme:    cfg.Theme,
		Renderer: lipgloss.NewRenderer(io.Discard), // no colors
	})
	return m, driver
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelTickAdvances(t *testing.T) {
	m, driver := newTestModel(t, snake.DefaultBoard)

	if m.Init() == nil {
		t.Fatal("Init() should start the tick chain")
	}

	_, cmd := update(t, m, TickMsg{Gen: driver.Generation()})
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
	if got := driver.Snapshot().Tick; got != 1 {
		t.Errorf("tick = %d, expected 1", got)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, driver := newTestModel(t, snake.DefaultBoard)
	oldGen := driver.Generation()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("restart should start a new tick chain")
	}
	if driver.Generation() == oldGen {
		t.Fatal("restart should bump the generation")
	}

	_, cmd = update(t, m, TickMsg{Gen: oldGen})
	if cmd != nil {
		t.Error("a tick from the previous chain should not reschedule")
	}
	if got := driver.Snapshot().Tick; got != 0 {
		t.Errorf("tick = %d, expected the stale tick to be dropped", got)
	}
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	// One column: the first move lands on the body
	m, driver := newTestModel(t, snake.Board{Width: 15, Height: 45, UnitSize: 15})

	m, cmd := update(t, m, TickMsg{Gen: driver.Generation()})
	if cmd != nil {
		t.Error("the tick chain should end on game over")
	}
	if !strings.Contains(m.View(), "YOU DIED") {
		t.Errorf("expected game over view:\n%s", m.View())
	}

	// Restart re-arms
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil || !driver.Armed() {
		t.Error("restart after game over should re-arm the tick chain")
	}
}

func TestModelDirectionKeysQueueTurns(t *testing.T) {
	m, driver := newTestModel(t, snake.DefaultBoard)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runeKey('a'))
	if driver.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected 2", driver.Pending())
	}

	update(t, m, TickMsg{Gen: driver.Generation()})
	if got := driver.Snapshot().Direction; got != snake.DirUp {
		t.Errorf("direction = %v, expected up", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, snake.DefaultBoard)

	short := m.View()
	if !strings.Contains(short, "space restart") {
		t.Errorf("short help missing restart binding:\n%s", short)
	}

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, snake.DefaultBoard)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelViewFitsTerminal(t *testing.T) {
	m, _ := newTestModel(t, snake.DefaultBoard)

	view := m.View()
	if h := lipgloss.Height(view); h > 24 {
		t.Errorf("view height = %d, expected at most 24", h)
	}
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing HUD:\n%s", view)
	}
	if strings.Contains(view, "Window too small") {
		t.Errorf("default board should fit 80x24:\n%s", view)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, snake.DefaultBoard)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected size warning after shrinking:\n%s", m.View())
	}
}
