package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoopScheduler runs delayed callbacks on the bubbletea loop: the timer only
// hands the callback to Update, which calls it.
type LoopScheduler struct {
	tasks chan func()
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{tasks: make(chan func(), 64)}
}

// After implements piano.Scheduler.
func (s *LoopScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { s.tasks <- fn })
}

// Tasks is the channel Model listens on.
func (s *LoopScheduler) Tasks() <-chan func() {
	return s.tasks
}

// TaskMsg carries a due callback into Update.
type TaskMsg func()

func ListenForTasks(tasks <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return TaskMsg(<-tasks)
	}
}
