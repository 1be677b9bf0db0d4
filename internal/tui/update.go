package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case MsgActionDone:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.status = msg.Status
		return m, m.loadTasks()

	case MsgTick:
		// Only the list needs refreshing; elapsed time is valued at read time.
		return m, tea.Batch(m.loadTasks(), tick())
	}

	return m, nil
}

// handleKeyMsg dispatches key presses based on the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeAdd:
		return m.handleAddKeys(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles key presses in normal mode.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if t := m.selected(); t != nil {
			id := t.ID
			return m, m.runAction("started "+t.Name, func() error {
				return m.svc.StartTracking(id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Stop):
		if t := m.selected(); t != nil {
			id := t.ID
			return m, m.runAction("stopped "+t.Name, func() error {
				return m.svc.StopTracking(id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Done):
		if t := m.selected(); t != nil {
			id := t.ID
			return m, m.runAction("completed "+t.Name, func() error {
				return m.svc.Complete(id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.selected() != nil {
			m.mode = ModeConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.addInput.Reset()
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.ShowAll):
		m.showAll = !m.showAll
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.CycleSrt):
		m.strategy = nextStrategy(m.strategy)
		m.status = "sort: " + string(m.strategy)
		return m, m.loadTasks()
	}

	return m, nil
}

// handleAddKeys handles key presses while the quick-add input is open.
func (m *Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.addInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		input := strings.TrimSpace(m.addInput.Value())
		m.mode = ModeNormal
		m.addInput.Blur()
		if input == "" {
			return m, nil
		}
		return m, m.addTask(input)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles the delete confirmation dialog.
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = ModeNormal
		if t := m.selected(); t != nil {
			id := t.ID
			return m, m.runAction("deleted "+t.Name, func() error {
				return m.svc.Delete(id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// nextStrategy cycles through the sort strategies.
func nextStrategy(s domain.SortStrategy) domain.SortStrategy {
	switch s {
	case domain.SortUrgency:
		return domain.SortPriority
	case domain.SortPriority:
		return domain.SortDueDate
	default:
		return domain.SortUrgency
	}
}
