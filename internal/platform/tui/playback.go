package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/replay"
)

// PlaybackKeyMap defines the key bindings while watching a replay.
type PlaybackKeyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlaybackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlaybackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPlaybackKeyMap returns default key bindings.
func DefaultPlaybackKeyMap() PlaybackKeyMap {
	return PlaybackKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// maxSpeed caps the playback multiplier.
const maxSpeed = 8

// PlaybackModel is the Bubble Tea model for watching a recorded session.
type PlaybackModel struct {
	player   *replay.Player
	screen   *core.Screen
	tickRate int
	speed    int
	paused   bool
	keys     PlaybackKeyMap
	help     help.Model
	quitting bool
}

// NewPlaybackModel creates a playback model at normal speed.
func NewPlaybackModel(player *replay.Player, cfg core.RuntimeConfig) PlaybackModel {
	return PlaybackModel{
		player:   player,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		tickRate: cfg.TickRate,
		speed:    1,
		keys:     DefaultPlaybackKeyMap(),
		help:     help.New(),
	}
}

// Init starts the tick loop.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages for playback.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Faster):
			m.speed = min(m.speed*2, maxSpeed)
		case key.Matches(msg, m.keys.Slower):
			m.speed = max(m.speed/2, 1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			for i := 0; i < m.speed && m.player.Step(); i++ {
			}
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the replayed game and a status line.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	m.player.Game().Render(m.screen)

	status := fmt.Sprintf("replay %d/%d  x%d", m.player.Position(), m.player.Len(), m.speed)
	switch {
	case m.player.Done():
		status += "  finished"
	case m.paused:
		status += "  paused"
	}

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status) + "  " + helpStyle.Render(m.help.View(m.keys))
}

// RunPlayback plays a recording in the terminal.
func RunPlayback(rec replay.Recording, cfg core.RuntimeConfig) error {
	player, err := replay.NewPlayer(rec)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewPlaybackModel(player, cfg),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
