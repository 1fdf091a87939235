package checklist

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nibzard/checkmarks-go/internal/config"
)

var (
	taskRe  = regexp.MustCompile(`^\s*[-*]\s*\[([xX ])\]`)
	titleRe = regexp.MustCompile(`^\s*#\s+(.+)$`)
)

// maxLineSize bounds the line buffer; lines beyond it abort the scan silently.
const maxLineSize = 1 << 20

// Stat is the computed progress summary for one Markdown file.
type Stat struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Percent returns completion as a percentage, 0 when there are no tasks.
func (s Stat) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// Parse scans the Markdown file at path and returns its progress stat.
// It never fails: a missing or unreadable file yields zero tasks and the
// base-name title.
func Parse(path string) Stat {
	resolved := config.ExpandPath(path)
	st := Stat{
		Path:  resolved,
		Title: baseTitle(resolved),
	}

	fi, err := os.Stat(resolved)
	if err != nil || !fi.Mode().IsRegular() {
		return st
	}

	f, err := os.Open(resolved)
	if err != nil {
		return st
	}
	defer f.Close()

	titleFound := false
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if !titleFound {
			if m := titleRe.FindStringSubmatch(line); m != nil {
				st.Title = strings.TrimSpace(m[1])
				titleFound = true
			}
		}
		if m := taskRe.FindStringSubmatch(line); m != nil {
			st.Total++
			if m[1] == "x" || m[1] == "X" {
				st.Completed++
			}
		}
	}
	// Scanner errors (e.g. oversized lines) leave the counts gathered so far.

	return st
}

// BuildStats parses each path in order and returns one Stat per input path.
// Repeated paths yield repeated stats; files are parsed independently.
func BuildStats(paths []string) []Stat {
	stats := make([]Stat, 0, len(paths))
	for _, p := range paths {
		stats = append(stats, Parse(p))
	}
	return stats
}

// ScanDir walks dir recursively and returns stats for every .md file that
// contains at least one task line.
func ScanDir(dir string) ([]Stat, error) {
	root := config.ExpandPath(dir)
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, &os.PathError{Op: "scan", Path: dir, Err: os.ErrInvalid}
	}

	var found []Stat
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		if st := Parse(path); st.Total > 0 {
			found = append(found, st)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// baseTitle returns the base name of path without its extension.
func baseTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
