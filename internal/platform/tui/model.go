package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/registry"
	"github.com/vovakirdan/kokaton-arcade/internal/replay"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Options tune a play session.
type Options struct {
	Store     *storage.Store       // Where replays go; nil disables recording
	Record    bool                 // Record every session into Store
	Config    config.KokatonConfig // Stored alongside each replay
	HoldTicks int                  // Ticks a key press counts as held
	LossDelay time.Duration        // Restart is ignored for this long after a loss
	Logger    *log.Logger
}

// SaveResult reports one replay save attempt.
type SaveResult struct {
	ID  string
	Err error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     *KeyMapper
	held     *HoldTracker
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	recorder *replay.Recorder
	endedAt  time.Time // Zero while the game is running
	saves    []SaveResult
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		held:   NewHoldTracker(opts.HoldTicks),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
	m.startRecording()
	return m
}

// startRecording begins a new recording for the current seed, if enabled.
func (m *Model) startRecording() {
	m.recorder = nil
	if m.opts.Record && m.opts.Store != nil {
		m.recorder = replay.NewRecorder(m.config.Seed, m.opts.Config)
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	// Once the game has ended only restart and quit matter
	if m.state.Ended() {
		switch action {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionRestart:
			m.input.Set(action)
		}
		return m, nil
	}

	switch {
	case IsMove(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The field keeps its size;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.state.Ended() {
		if m.input.Has(core.ActionRestart) && now.Sub(m.endedAt) >= m.opts.LossDelay {
			m.restart()
		}
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.input)
	if m.recorder != nil {
		m.recorder.Record(m.input)
	}

	result := m.game.Step(m.input)
	m.state = result.State

	m.held.Advance()
	m.input.Clear()

	if m.state.Ended() {
		m.endedAt = now
		m.saveReplay()
		if m.state.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new game with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.endedAt = time.Time{}
	m.held.Reset()
	m.startRecording()
}

// saveReplay stores the finished recording. Failures are reported after the
// program exits; the game continues regardless.
func (m *Model) saveReplay() {
	if m.recorder == nil {
		return
	}

	ticks := m.recorder.Len()
	if t, ok := m.game.(interface{ Ticks() int }); ok {
		ticks = t.Ticks()
	}

	id, err := replay.Save(m.opts.Store, m.recorder.Recording(), m.state, ticks)
	m.saves = append(m.saves, SaveResult{ID: id, Err: err})
	m.recorder = nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Saves returns the replay save attempts made so far.
func (m Model) Saves() []SaveResult {
	return m.saves
}

// Run starts the Bubble Tea program for the given game and logs any replays
// saved once the program has exited.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok && opts.Logger != nil {
		logSaves(opts.Logger, m.Saves())
	}
	return err
}

func logSaves(logger *log.Logger, saves []SaveResult) {
	for _, s := range saves {
		if s.Err != nil {
			logger.Warn("cannot save replay", "error", s.Err)
			continue
		}
		logger.Info("replay saved", "id", s.ID)
	}
}
