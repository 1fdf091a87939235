// Package render formats checklist stats for terminal and HTML output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nibzard/checkmarks-go/internal/checklist"
)

// DefaultBarWidth is used when a renderer is constructed with width <= 0.
const DefaultBarWidth = 20

// Bar returns an ASCII progress bar like "[########------------] 40.0% (2/5)".
// Zero-task files render as "[--------------------] n/a".
func Bar(completed, total, width int) string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	if total == 0 {
		return fmt.Sprintf("[%s] n/a", strings.Repeat("-", width))
	}
	ratio := float64(completed) / float64(total)
	filled := int(ratio * float64(width))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s] %.1f%% (%d/%d)", bar, ratio*100, completed, total)
}

// Renderer writes a dashboard view of stats.
type Renderer interface {
	Render(w io.Writer, stats []checklist.Stat) error
}

// Plain renders one title line and one ASCII bar per file.
type Plain struct {
	BarWidth int
}

// Render writes the plain-text dashboard.
func (r Plain) Render(w io.Writer, stats []checklist.Stat) error {
	maxTitle := 0
	for _, s := range stats {
		if len(s.Title) > maxTitle {
			maxTitle = len(s.Title)
		}
	}
	for _, s := range stats {
		pad := strings.Repeat(" ", maxTitle-len(s.Title))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", s.Title, pad, Bar(s.Completed, s.Total, r.BarWidth)); err != nil {
			return err
		}
	}
	return nil
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Table renders a styled terminal table with Title/Completed/Total/Progress
// columns.
type Table struct {
	BarWidth int
}

// Render writes the table dashboard.
func (r Table) Render(w io.Writer, stats []checklist.Stat) error {
	t := table.New().
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Padding(0, 1)
			}
			return tableCellStyle
		}).
		Headers("Title", "Completed", "Total", "Progress")

	for _, s := range stats {
		t.Row(s.Title,
			fmt.Sprintf("%d", s.Completed),
			fmt.Sprintf("%d", s.Total),
			progressCell(s, r.BarWidth))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// progressCell is the bar-plus-percent string used by table and HTML views.
func progressCell(s checklist.Stat, width int) string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	if s.Total == 0 {
		return "No tasks"
	}
	ratio := float64(s.Completed) / float64(s.Total)
	filled := int(ratio * float64(width))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("%s %.1f%%", bar, ratio*100)
}
