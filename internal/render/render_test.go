package render

import (
	"strings"
	"testing"

	"github.com/nibzard/checkmarks-go/internal/checklist"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		width     int
		want      string
	}{
		{
			name:  "no tasks",
			width: 4,
			want:  "[----] n/a",
		},
		{
			name:      "half done",
			completed: 1,
			total:     2,
			width:     10,
			want:      "[#####-----] 50.0% (1/2)",
		},
		{
			name:      "all done",
			completed: 3,
			total:     3,
			width:     5,
			want:      "[#####] 100.0% (3/3)",
		},
		{
			name:      "two thirds",
			completed: 2,
			total:     3,
			width:     20,
			want:      "[#############-------] 66.7% (2/3)",
		},
		{
			name:      "zero width falls back to default",
			completed: 0,
			total:     1,
			width:     0,
			want:      "[--------------------] 0.0% (0/1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bar(tt.completed, tt.total, tt.width)
			if got != tt.want {
				t.Errorf("Bar(%d, %d, %d) = %q, want %q", tt.completed, tt.total, tt.width, got, tt.want)
			}
		})
	}
}

func TestPlainRender(t *testing.T) {
	stats := []checklist.Stat{
		{Path: "/a.md", Title: "Groceries", Completed: 1, Total: 2},
		{Path: "/b.md", Title: "Ops", Completed: 0, Total: 0},
	}

	var b strings.Builder
	if err := (Plain{BarWidth: 10}).Render(&b, stats); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output lines = %d, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Groceries  ") {
		t.Errorf("line 0 = %q, want padded title prefix", lines[0])
	}
	if !strings.Contains(lines[0], "50.0% (1/2)") {
		t.Errorf("line 0 = %q, want 50%% bar", lines[0])
	}
	if !strings.Contains(lines[1], "n/a") {
		t.Errorf("line 1 = %q, want n/a bar for zero tasks", lines[1])
	}
}

func TestTableRender(t *testing.T) {
	stats := []checklist.Stat{
		{Path: "/a.md", Title: "Release", Completed: 2, Total: 4},
		{Path: "/b.md", Title: "Empty", Completed: 0, Total: 0},
	}

	var b strings.Builder
	if err := (Table{BarWidth: 10}).Render(&b, stats); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{"Title", "Completed", "Total", "Progress", "Release", "50.0%", "No tasks"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	stats := []checklist.Stat{
		{Path: "/a.md", Title: "Plan <v1>", Completed: 1, Total: 4},
		{Path: "/b.md", Title: "Empty", Completed: 0, Total: 0},
	}

	var b strings.Builder
	if err := WriteHTML(&b, stats, 8); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{
		"<title>Checkmarks Dashboard</title>",
		"<tr><th>Title</th><th>Completed</th><th>Total</th><th>Progress</th></tr>",
		"Plan &lt;v1&gt;",
		"<td>1</td><td>4</td>",
		"No tasks",
		"</table></body></html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<v1>") {
		t.Error("HTML output contains unescaped title")
	}
}
