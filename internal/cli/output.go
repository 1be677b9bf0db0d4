package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"tempo/internal/domain"
	"tempo/internal/service"
)

// renderStructured writes v as JSON or YAML.
func renderStructured(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

// printTaskTable writes tasks in a columnar table.
func printTaskTable(w io.Writer, tasks []service.TaskDto) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCORE\tSTATUS\tPRI\tDUE\tPROJECT\tSPENT\tNAME")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID.String()[:8],
			t.Score,
			t.StatusLabel,
			t.Priority,
			formatDue(t.Due),
			orDash(t.Project),
			formatSpent(t),
			t.Name,
		)
	}
	_ = tw.Flush()
}

// printTaskDetail writes one task in a label/value layout.
func printTaskDetail(w io.Writer, t service.TaskDto) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", t.Name)
	fmt.Fprintf(tw, "Status:\t%s\n", t.StatusLabel)
	fmt.Fprintf(tw, "Priority:\t%s\n", t.Priority)
	fmt.Fprintf(tw, "Project:\t%s\n", orDash(t.Project))
	fmt.Fprintf(tw, "Due:\t%s\n", formatDue(t.Due))
	fmt.Fprintf(tw, "Estimate:\t%s\n", orDash(t.Estimate))
	fmt.Fprintf(tw, "Time spent:\t%s\n", formatSpent(t))
	fmt.Fprintf(tw, "Remaining:\t%.1fh\n", t.RemainingEstimate)
	fmt.Fprintf(tw, "Created:\t%s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	if t.CompletedAt != nil {
		fmt.Fprintf(tw, "Completed:\t%s\n", t.CompletedAt.Local().Format("2006-01-02 15:04"))
	}
	if t.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", t.Description)
	}
	_ = tw.Flush()
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	return due.Local().Format("2006-01-02")
}

func formatSpent(t service.TaskDto) string {
	spent := domain.FormatDuration(t.TotalTimeSpent)
	if t.IsTracking {
		return spent + "*"
	}
	return spent
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
