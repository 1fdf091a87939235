package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/checkmarks-go/internal/config"
	"github.com/nibzard/checkmarks-go/internal/tracker"
)

// addCommand adds a Markdown file to the tracked list.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: checkmarks add <file>")
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	added, err := mgr.Add(args[0])
	if err != nil {
		return logSaveError(logger, err)
	}
	if !added {
		fmt.Printf("%q is already tracked.\n", args[0])
		return nil
	}
	fmt.Printf("Added %q to the dashboard.\n", args[0])
	return nil
}

// removeCommand removes a Markdown file from the tracked list.
func removeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: checkmarks remove <file>")
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	removed, err := mgr.Remove(args[0])
	if err != nil {
		return logSaveError(logger, err)
	}
	if !removed {
		fmt.Printf("%q is not tracked.\n", args[0])
		return nil
	}
	fmt.Printf("Removed %q from the dashboard.\n", args[0])
	return nil
}

// listCommand prints the tracked paths, one per line, in insertion order.
func listCommand(cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: checkmarks list")
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	for _, p := range mgr.Paths() {
		fmt.Println(p)
	}
	return nil
}
