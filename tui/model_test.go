package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-piano/keys"
	"go-piano/piano"
	"go-piano/theme"
	"go-piano/widgets"
)

type fakeAudio struct {
	acquires int
	emits    []float64
}

func (f *fakeAudio) Acquire()            { f.acquires++ }
func (f *fakeAudio) Emit(freqHz float64) { f.emits = append(f.emits, freqHz) }
func (f *fakeAudio) Ready() bool         { return f.acquires > 0 }
func (f *fakeAudio) SampleRate() int     { return 44100 }

func newTestModel(t *testing.T) (Model, *fakeAudio, *piano.ManualClock) {
	t.Helper()
	p, err := theme.Builtin(theme.DefaultPalette)
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	th := theme.New(p)
	audio := &fakeAudio{}
	clock := &piano.ManualClock{}
	catalog := keys.Default()
	router := piano.NewRouter(catalog, audio, clock)
	m := NewModel(router, widgets.NewKeyboard(catalog, th), th, audio,
		Options{Title: "Interactive Piano", KeyCount: 16}, nil)
	return m, audio, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyPressPlaysAndClears(t *testing.T) {
	m, audio, clock := newTestModel(t)

	m = update(t, m, keyMsg('a'))
	if !m.Router.IsActive("C4") {
		t.Fatalf("C4 should be active after pressing a")
	}
	if len(audio.emits) != 1 || audio.emits[0] != 261.63 {
		t.Fatalf("emits = %v, want [261.63]", audio.emits)
	}
	if !strings.Contains(m.View(), "playing:C4") {
		t.Fatalf("status should list C4:\n%s", m.View())
	}

	clock.Advance(piano.ResetDelay)
	if m.Router.IsActive("C4") {
		t.Fatalf("C4 should clear after %v", piano.ResetDelay)
	}
	if !strings.Contains(m.View(), "playing:-") {
		t.Fatalf("status should be idle:\n%s", m.View())
	}
}

func TestUnboundKeyOnlyOpensAudio(t *testing.T) {
	m, audio, clock := newTestModel(t)
	m = update(t, m, keyMsg('z'))
	if len(m.Router.Active()) != 0 || len(audio.emits) != 0 || clock.Pending() != 0 {
		t.Fatalf("z must not change note state")
	}
	if audio.acquires != 1 {
		t.Fatalf("first keydown should acquire audio, acquires = %d", audio.acquires)
	}
}

func TestAudioAcquiredOnce(t *testing.T) {
	m, audio, _ := newTestModel(t)
	for _, r := range "asdfg" {
		m = update(t, m, keyMsg(r))
	}
	m = update(t, m, tea.MouseMsg{X: 3, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if audio.acquires != 1 {
		t.Fatalf("acquires = %d, want 1", audio.acquires)
	}
}

func TestMouseClickPlaysNote(t *testing.T) {
	m, audio, clock := newTestModel(t)

	// Keyboard starts at column 2, row 3; row 9 is the bottom of the white keys.
	m = update(t, m, tea.MouseMsg{X: 2 + 6, Y: 3 + 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Router.IsActive("D4") {
		t.Fatalf("click should press D4, active = %v", m.Router.Active())
	}

	// Second click on the same key is not guarded.
	clock.Advance(50 * time.Millisecond)
	m = update(t, m, tea.MouseMsg{X: 2 + 6, Y: 3 + 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(audio.emits) != 2 || len(m.Router.Active()) != 1 {
		t.Fatalf("emits=%d active=%v, want 2 emits and one active note", len(audio.emits), m.Router.Active())
	}

	// Black key on top row.
	m = update(t, m, tea.MouseMsg{X: 2 + 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Router.IsActive("C#4") {
		t.Fatalf("click should press C#4, active = %v", m.Router.Active())
	}
}

func TestMouseMissAndRightClick(t *testing.T) {
	m, audio, _ := newTestModel(t)
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if len(audio.emits) != 0 || len(m.Router.Active()) != 0 {
		t.Fatalf("miss and right click must not play")
	}
}

func TestHoverIsCosmetic(t *testing.T) {
	m, audio, _ := newTestModel(t)
	m = update(t, m, tea.MouseMsg{X: 2 + 12, Y: 3 + 6, Action: tea.MouseActionMotion})
	if m.hover != "E4" {
		t.Fatalf("hover = %q, want E4", m.hover)
	}
	if len(m.Router.Active()) != 0 || len(audio.emits) != 0 || audio.acquires != 0 {
		t.Fatalf("hover must not trigger anything")
	}
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.hover != "" {
		t.Fatalf("hover = %q, want empty", m.hover)
	}
}

func TestTaskMsgRunsOnLoop(t *testing.T) {
	m, _, _ := newTestModel(t)
	tasks := make(chan func(), 1)
	m.tasks = tasks

	ran := false
	next, cmd := m.Update(TaskMsg(func() { ran = true }))
	if !ran {
		t.Fatalf("task did not run")
	}
	if cmd == nil {
		t.Fatalf("expected a command to keep listening")
	}

	tasks <- func() {}
	if _, ok := cmd().(TaskMsg); !ok {
		t.Fatalf("listen command should yield a TaskMsg")
	}
	_ = next
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("esc should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("esc should quit")
	}
	if next.(Model).View() != "" {
		t.Fatalf("view should be empty after quit")
	}
}

func TestViewShowsTitleAndKeyCount(t *testing.T) {
	m, _, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Interactive Piano", "keys:16", "audio:press any key"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	m = update(t, m, keyMsg('q'))
	if !strings.Contains(m.View(), "audio:44100Hz") {
		t.Fatalf("view should show the sample rate once audio is up:\n%s", m.View())
	}
}

func TestLoopSchedulerDelivers(t *testing.T) {
	s := NewLoopScheduler()
	done := make(chan struct{})
	s.After(time.Millisecond, func() { close(done) })

	select {
	case fn := <-s.Tasks():
		fn()
	case <-time.After(time.Second):
		t.Fatalf("scheduled task never delivered")
	}
	select {
	case <-done:
	default:
		t.Fatalf("task was delivered but not the scheduled one")
	}
}
