package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the task board.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Selected lipgloss.Color

	Pending   lipgloss.Color
	Tracking  lipgloss.Color
	Completed lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Selected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Tracking:  lipgloss.Color("#FDCB6E"), // Yellow
	Completed: lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the task board.
type Styles struct {
	App      lipgloss.Style
	Header   lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style

	Pending   lipgloss.Style
	Tracking  lipgloss.Style
	Completed lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:      lipgloss.NewStyle().Padding(1, 2),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Normal:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Colors.Selected),
		Muted:    lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
		Status:   lipgloss.NewStyle().Foreground(Colors.Success),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted),

		Pending:   lipgloss.NewStyle().Foreground(Colors.Pending),
		Tracking:  lipgloss.NewStyle().Foreground(Colors.Tracking),
		Completed: lipgloss.NewStyle().Foreground(Colors.Completed),
	}
}

// statusStyle picks the style for a status label.
func (s Styles) statusStyle(label string) lipgloss.Style {
	switch label {
	case "Tracking":
		return s.Tracking
	case "Completed":
		return s.Completed
	default:
		return s.Pending
	}
}
