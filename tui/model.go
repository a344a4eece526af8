package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-piano/debug"
	"go-piano/piano"
	"go-piano/theme"
	"go-piano/widgets"
)

// keyboardLeft is the margin in cells left of the keyboard.
const keyboardLeft = 2

// layoutBounds holds cached layout info
type layoutBounds struct {
	kbTop  int
	kbLeft int
}

// AudioState reports the audio output for the status line.
type AudioState interface {
	Ready() bool
	SampleRate() int
}

// Options are the user facing settings of the piano.
type Options struct {
	Title    string
	KeyCount int
	Muted    bool
}

type Model struct {
	Router   *piano.Router
	Keyboard *widgets.Keyboard
	Theme    *theme.Theme
	Audio    AudioState
	Options  Options

	tasks    <-chan func()
	hover    string
	gestured bool
	quitting bool
	bounds   *layoutBounds
}

func NewModel(router *piano.Router, kb *widgets.Keyboard, th *theme.Theme, audio AudioState, opts Options, tasks <-chan func()) Model {
	m := Model{
		Router:   router,
		Keyboard: kb,
		Theme:    th,
		Audio:    audio,
		Options:  opts,
		tasks:    tasks,
		bounds:   &layoutBounds{kbLeft: keyboardLeft},
	}
	m.bounds.kbTop = 1 + lipgloss.Height(m.header()) + 1
	return m
}

func (m Model) Init() tea.Cmd {
	if m.tasks == nil {
		return nil
	}
	return ListenForTasks(m.tasks)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		m.gesture()
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			m.Router.PressKey(msg.Runes[0])
		}

	case tea.MouseMsg:
		k, hit := m.Keyboard.HitTest(msg.X-m.bounds.kbLeft, msg.Y-m.bounds.kbTop)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.gesture()
			if hit {
				m.Router.PressNote(k.Note)
			}
		case msg.Action == tea.MouseActionMotion:
			m.hover = ""
			if hit {
				m.hover = k.Note
			}
			debug.LogEvery(50, "tui", "hover %q", m.hover)
		}

	case TaskMsg:
		msg()
		return m, ListenForTasks(m.tasks)
	}

	return m, nil
}

// gesture forwards the first user interaction to the router, which opens the
// audio output. The model stops forwarding after that.
func (m *Model) gesture() {
	if m.gestured {
		return
	}
	m.gestured = true
	m.Router.Gesture()
}

func (m Model) header() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	return headerStyle.Render(m.Options.Title)
}

func (m Model) status() string {
	audio := "audio:off"
	switch {
	case m.Options.Muted:
		audio = "audio:muted"
	case m.Audio != nil && m.Audio.Ready():
		audio = fmt.Sprintf("audio:%dHz", m.Audio.SampleRate())
	case !m.gestured:
		audio = "audio:press any key"
	}

	active := strings.Join(m.Router.Active(), " ")
	if active == "" {
		active = "-"
	}
	return fmt.Sprintf("%s  keys:%d  playing:%s", audio, m.Options.KeyCount, active)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	statusStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	kbStyle := lipgloss.NewStyle().MarginLeft(m.bounds.kbLeft)

	header := m.header()
	keyboard := kbStyle.Render(m.Keyboard.View(m.Router.ActiveSet(), m.hover))
	help := dimStyle.Render(widgets.RenderHelpLine([]widgets.KeyBinding{
		{Key: "a s d f g h j k l", Desc: "white"},
		{Key: "w e t y u o p", Desc: "black"},
		{Key: "click", Desc: "play"},
		{Key: "esc", Desc: "quit"},
	}))

	m.bounds.kbTop = 1 + lipgloss.Height(header) + 1

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(keyboard)
	out.WriteString("\n\n")
	out.WriteString(statusStyle.Render(m.status()))
	out.WriteString("\n")
	out.WriteString(help)

	return out.String()
}
