// Package tui hosts the countup controller in a Bubble Tea program: it owns
// the fixed-timestep tick, maps terminal keys to controller keys, and
// rasterizes the controller's render model.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emmabritton/countup/internal/countup"
	"github.com/emmabritton/countup/internal/prefs"
)

// TickMsg drives one fixed-timestep controller update.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model wrapping the controller.
type Model struct {
	ctrl  *countup.Controller
	keys  KeyMap
	theme Theme

	tick          time.Duration
	width, height int

	store  *prefs.Store // nil disables persistence
	window prefs.Window
}

// NewModel creates the TUI model. tickRate is in ticks per second; store may
// be nil when window preferences should not be persisted.
func NewModel(ctrl *countup.Controller, tickRate int, theme Theme, store *prefs.Store, window prefs.Window) *Model {
	if tickRate <= 0 {
		tickRate = countup.DefaultTickRate
	}
	return &Model{
		ctrl:   ctrl,
		keys:   DefaultKeyMap(),
		theme:  theme,
		tick:   time.Second / time.Duration(tickRate),
		store:  store,
		window: window,
	}
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.window.Width = msg.Width
		m.window.Height = msg.Height

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		m.ctrl.Update(m.tick)
		if m.ctrl.ShouldExit() {
			return m, tea.Quit
		}
		return m, tickCmd(m.tick)
	}

	return m, nil
}

// handleKeyPress maps terminal keys to controller key symbols.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		m.ctrl.OnKey(countup.KeyQuit)

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.OnKey(countup.KeyToggle)
	}

	if m.ctrl.ShouldExit() {
		m.saveWindow()
		return m, tea.Quit
	}
	return m, nil
}

// saveWindow persists the last seen terminal geometry. Failures are ignored:
// losing the remembered size must not block a clean exit.
func (m *Model) saveWindow() {
	if m.store == nil || m.window.Width <= 0 || m.window.Height <= 0 {
		return
	}
	_ = m.store.Save(m.window)
}

// Run starts the program in the alternate screen and blocks until exit.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
