package checklist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		title     string
		completed int
		total     int
	}{
		{
			name:      "heading and mixed bullets",
			file:      "list.md",
			content:   "# My List\n- [ ] a\n- [x] b\n* [X] c\n",
			title:     "My List",
			completed: 2,
			total:     3,
		},
		{
			name:      "no heading falls back to base name",
			file:      "todo.md",
			content:   "- [ ] a\n- [x] b\n",
			title:     "todo",
			completed: 1,
			total:     2,
		},
		{
			name:      "no tasks at all",
			file:      "notes.md",
			content:   "# Notes\n\nJust prose, no checkboxes.\n",
			title:     "Notes",
			completed: 0,
			total:     0,
		},
		{
			name:      "indented and tight markers",
			file:      "indent.md",
			content:   "  - [x] indented\n\t* [ ] tabbed\n-[X] no space after bullet\n",
			title:     "indent",
			completed: 2,
			total:     3,
		},
		{
			name:      "h2 is not a title",
			file:      "sub.md",
			content:   "## Subheading\n- [ ] a\n",
			title:     "sub",
			completed: 0,
			total:     1,
		},
		{
			name:      "first heading wins even after tasks",
			file:      "late.md",
			content:   "- [x] early task\n# Late Title\n- [ ] late task\n# Second Title\n",
			title:     "Late Title",
			completed: 1,
			total:     2,
		},
		{
			name:      "title surrounding whitespace trimmed",
			file:      "pad.md",
			content:   "#   Padded Title   \n- [ ] a\n",
			title:     "Padded Title",
			completed: 0,
			total:     1,
		},
		{
			name:      "non-marker brackets ignored",
			file:      "odd.md",
			content:   "- [y] not a marker\n- [xx] not a marker\n- [] empty\n- [ ] real\n",
			title:     "odd",
			completed: 0,
			total:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := writeFile(t, tmpDir, tt.file, tt.content)

			st := Parse(path)
			if st.Title != tt.title {
				t.Errorf("Title = %q, want %q", st.Title, tt.title)
			}
			if st.Completed != tt.completed {
				t.Errorf("Completed = %d, want %d", st.Completed, tt.completed)
			}
			if st.Total != tt.total {
				t.Errorf("Total = %d, want %d", st.Total, tt.total)
			}
			if st.Completed > st.Total {
				t.Errorf("Completed %d exceeds Total %d", st.Completed, st.Total)
			}
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	st := Parse(filepath.Join(t.TempDir(), "missing.md"))
	if st.Completed != 0 || st.Total != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", st.Completed, st.Total)
	}
	if st.Title != "missing" {
		t.Errorf("Title = %q, want %q", st.Title, "missing")
	}
}

func TestParseDirectory(t *testing.T) {
	dir := t.TempDir()
	st := Parse(dir)
	if st.Completed != 0 || st.Total != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", st.Completed, st.Total)
	}
}

func TestParseInvalidBytes(t *testing.T) {
	tmpDir := t.TempDir()
	content := append([]byte("# Busted\n- [x] ok\n"), 0xff, 0xfe, '\n')
	content = append(content, []byte("- [ ] after junk\n")...)
	path := filepath.Join(tmpDir, "busted.md")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	st := Parse(path)
	if st.Title != "Busted" {
		t.Errorf("Title = %q, want %q", st.Title, "Busted")
	}
	if st.Completed != 1 || st.Total != 2 {
		t.Errorf("counts = (%d, %d), want (1, 2)", st.Completed, st.Total)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		completed int
		total     int
		want      float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 4, 25},
		{4, 4, 100},
	}
	for _, tt := range tests {
		s := Stat{Completed: tt.completed, Total: tt.total}
		if got := s.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestBuildStats(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.md", "# A\n- [x] one\n")
	b := writeFile(t, tmpDir, "b.md", "# B\n- [ ] one\n- [ ] two\n")

	stats := BuildStats([]string{b, a, b})
	if len(stats) != 3 {
		t.Fatalf("len(stats) = %d, want 3", len(stats))
	}
	if stats[0].Title != "B" || stats[1].Title != "A" || stats[2].Title != "B" {
		t.Errorf("titles = %q, %q, %q; want B, A, B", stats[0].Title, stats[1].Title, stats[2].Title)
	}
	if stats[0].Total != 2 || stats[2].Total != 2 {
		t.Errorf("repeated path should yield repeated stats, got totals %d and %d", stats[0].Total, stats[2].Total)
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil)
	if len(stats) != 0 {
		t.Errorf("len(stats) = %d, want 0", len(stats))
	}
}

func TestScanDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "tasks.md", "# Tasks\n- [ ] a\n")
	writeFile(t, tmpDir, "prose.md", "# Prose\nno tasks here\n")
	writeFile(t, tmpDir, "notes.txt", "- [ ] not markdown\n")

	sub := filepath.Join(tmpDir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "NESTED.MD", "- [x] nested\n")

	found, err := ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("len(found) = %d, want 2", len(found))
	}
	for _, st := range found {
		if st.Total == 0 {
			t.Errorf("found %s with zero tasks", st.Path)
		}
	}
}

func TestScanDirNotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := writeFile(t, tmpDir, "file.md", "- [ ] a\n")
	if _, err := ScanDir(file); err == nil {
		t.Error("ScanDir() expected error for non-directory, got nil")
	}
	if _, err := ScanDir(filepath.Join(tmpDir, "nope")); err == nil {
		t.Error("ScanDir() expected error for missing directory, got nil")
	}
}
