package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// Options configures a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Keys     config.Keys
	Theme    config.Theme
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Logger   *log.Logger
}

// Model is the Bubble Tea model of one game session. Key and tick messages
// are the only inputs of the driver, so the simulation has a single writer.
type Model struct {
	driver   *loop.Driver
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	palette  Palette
	footer   lipgloss.Style
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model around driver.
func NewModel(driver *loop.Driver, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		driver:  driver,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMap(opts.Keys),
		help:    h,
		palette: NewPalette(r, opts.Theme),
		footer:  r.NewStyle().Foreground(lipgloss.Color(opts.Theme.Border)),
		logger:  logger,
	}
}

// Init starts the tick chain of the current session.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval, m.driver.Generation())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.driver.Snapshot().Score)
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRestart:
		gen := m.driver.Restart()
		return m, tickCmd(m.config.TickInterval, gen)
	}

	if action.IsDirectional() {
		dir, _ := snake.DirectionFor(action)
		m.driver.Turn(dir)
	}
	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one interval. Ticks from an earlier
// chain are dropped, and the chain ends when the driver disarms.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.driver.Generation() {
		return m, nil
	}

	frame := m.driver.Step()
	if !frame.Armed {
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, frame.Generation)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer.Render(m.help.View(m.keys))
	boardH := max(m.config.ScreenH-lipgloss.Height(footer), 0)
	m.screen.Resize(m.config.ScreenW, boardH)

	snake.Render(m.screen, m.driver.Snapshot())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.palette))
	b.WriteRune('\n')
	b.WriteString(footer)
	return b.String()
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, driver *loop.Driver, opts Options) error {
	model := NewModel(driver, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
