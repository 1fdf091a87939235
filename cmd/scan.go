package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/checkmarks-go/internal/checklist"
	"github.com/nibzard/checkmarks-go/internal/config"
	"github.com/nibzard/checkmarks-go/internal/tracker"
)

// scanCommand finds Markdown files with tasks under a directory and
// interactively adds them to the tracked list.
func scanCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: checkmarks scan <directory>")
	}

	found, err := checklist.ScanDir(args[0])
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}
	if len(found) == 0 {
		fmt.Println("No Markdown files with tasks found in that directory.")
		return nil
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	return scanPrompt(mgr, logger, found, os.Stdin, os.Stdout)
}

// scanPrompt asks y/n for each candidate file and adds accepted ones.
func scanPrompt(mgr *tracker.Manager, logger *log.Logger, found []checklist.Stat, in io.Reader, out io.Writer) error {
	tracked := make(map[string]bool)
	for _, p := range mgr.Paths() {
		tracked[p] = true
	}

	reader := bufio.NewReader(in)
	for _, st := range found {
		if tracked[tracker.Normalize(st.Path)] {
			fmt.Fprintf(out, "Already tracked: %s (%s)\n", st.Title, st.Path)
			continue
		}

		fmt.Fprintf(out, "Found: %s (%d/%d tasks). Add to dashboard? [y/n]\n> ", st.Title, st.Completed, st.Total)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		if strings.ToLower(strings.TrimSpace(line)) == "y" {
			if _, err := mgr.Add(st.Path); err != nil {
				return logSaveError(logger, err)
			}
			fmt.Fprintf(out, "Added %s to the dashboard.\n", st.Title)
		} else {
			fmt.Fprintf(out, "Skipped %s.\n", st.Title)
		}
	}
	return nil
}
