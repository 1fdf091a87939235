package render

import (
	"fmt"
	"html"
	"io"
	"os"

	"github.com/nibzard/checkmarks-go/internal/checklist"
)

// WriteHTML writes a standalone HTML dashboard table to w.
func WriteHTML(w io.Writer, stats []checklist.Stat, barWidth int) error {
	lines := []string{
		"<html>",
		"<head><meta charset='utf-8'><title>Checkmarks Dashboard</title></head>",
		"<body>",
		"<h1>Checkmarks Dashboard</h1>",
		"<table border='1' cellpadding='5' cellspacing='0' style='border-collapse: collapse;'>",
		"<tr><th>Title</th><th>Completed</th><th>Total</th><th>Progress</th></tr>",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for _, s := range stats {
		row := fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>",
			html.EscapeString(s.Title), s.Completed, s.Total,
			html.EscapeString(progressCell(s, barWidth)))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table></body></html>")
	return err
}

// ExportHTML writes the HTML dashboard to outputPath.
func ExportHTML(outputPath string, stats []checklist.Stat, barWidth int) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := WriteHTML(f, stats, barWidth); err != nil {
		f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	return f.Close()
}
