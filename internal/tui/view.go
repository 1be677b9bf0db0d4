package tui

import (
	"fmt"
	"strings"

	"tempo/internal/domain"
	"tempo/internal/service"
)

// View renders the task board.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeAdd:
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("Add: "))
		b.WriteString(m.addInput.View())
		b.WriteString("\n")
	case ModeConfirmDelete:
		b.WriteString("\n")
		if t := m.selected(); t != nil {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Delete %q? (enter/y to confirm, esc to cancel)", t.Name)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title line with the task count and sort strategy.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("Tempo")
	count := m.styles.Muted.Render(fmt.Sprintf("%d tasks · sort: %s", len(m.tasks), m.strategy))
	return title + "  " + count
}

// viewTaskList renders the task rows.
func (m *Model) viewTaskList() string {
	if m.loading {
		return m.styles.Muted.Render("Loading tasks...")
	}
	if len(m.tasks) == 0 {
		return m.styles.Muted.Render("No tasks. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range m.tasks {
		b.WriteString(m.viewTaskRow(i, t))
		b.WriteString("\n")
	}
	return b.String()
}

// viewTaskRow renders a single task line.
func (m *Model) viewTaskRow(i int, t service.TaskDto) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	status := m.styles.statusStyle(t.StatusLabel).Render(fmt.Sprintf("%-9s", t.StatusLabel))
	id := m.styles.Muted.Render(t.ID.String()[:8])

	spent := domain.FormatDuration(t.TotalTimeSpent)
	if t.IsTracking {
		spent = m.styles.Tracking.Render(spent + " *")
	} else {
		spent = m.styles.Muted.Render(spent)
	}

	var meta []string
	if t.Project != "" {
		meta = append(meta, "@"+t.Project)
	}
	if t.Due != nil {
		meta = append(meta, "due "+t.Due.Local().Format("2006-01-02"))
	}
	metaStr := ""
	if len(meta) > 0 {
		metaStr = "  " + m.styles.Muted.Render(strings.Join(meta, " "))
	}

	name := t.Name
	if i == m.cursor {
		name = m.styles.Selected.Render(name)
	}

	return fmt.Sprintf("%s%s %s %s %s%s", cursor, id, status, spent, name, metaStr)
}

// viewHelp renders the key hint line.
func (m *Model) viewHelp() string {
	hints := []string{
		"↑/↓ move", "s start", "S stop", "d done", "x delete",
		"a add", "c completed", "o sort", "q quit",
	}
	return m.styles.Help.Render(strings.Join(hints, " · "))
}
