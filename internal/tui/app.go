// Package tui implements the interactive task board.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/domain"
	"tempo/internal/service"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeConfirmDelete
)

// Model is the task board TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	svc *service.TaskService

	// State
	tasks  []service.TaskDto
	err    error
	status string

	// Components
	keys     KeyMap
	styles   Styles
	addInput textinput.Model

	// Numeric state
	strategy domain.SortStrategy
	cursor   int
	width    int
	height   int
	mode     Mode

	// Boolean state
	showAll bool
	loading bool
}

// New creates a new task board model.
func New(svc *service.TaskService, strategy domain.SortStrategy) *Model {
	ai := textinput.New()
	ai.Placeholder = "task name [due:fri] [pro:Work] [pri:h] [est:2h]"
	ai.CharLimit = 300

	return &Model{
		svc:      svc,
		strategy: strategy,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		addInput: ai,
		mode:     ModeNormal,
		loading:  true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks(), tick())
}

// loadTasks reloads the task list.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.List(service.ListInput{
			Strategy:         m.strategy,
			IncludeCompleted: m.showAll,
		})
		return MsgTasksLoaded{Tasks: tasks, Err: err}
	}
}

// tick schedules the next live-time refresh.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *service.TaskDto {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}

// runAction executes a mutating service call off the update loop.
func (m *Model) runAction(status string, op func() error) tea.Cmd {
	return func() tea.Msg {
		if err := op(); err != nil {
			return MsgActionDone{Err: err}
		}
		return MsgActionDone{Status: status}
	}
}

// addTask parses the quick-add input and creates a task.
func (m *Model) addTask(input string) tea.Cmd {
	return func() tea.Msg {
		in, err := service.QuickAddInput(strings.Fields(input), time.Now())
		if err != nil {
			return MsgActionDone{Err: err}
		}
		dto, err := m.svc.Create(in)
		if err != nil {
			return MsgActionDone{Err: err}
		}
		return MsgActionDone{Status: fmt.Sprintf("added %q", dto.Name)}
	}
}
