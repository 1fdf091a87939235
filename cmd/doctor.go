package cmd

import (
	"fmt"
	"os"

	"github.com/nibzard/checkmarks-go/internal/config"
	"github.com/nibzard/checkmarks-go/internal/tracker"
)

// doctorCommand checks the tracked-list file and the tracked paths.
func doctorCommand(cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: checkmarks doctor")
	}

	configPath := cfg.ConfigFile
	if configPath == "" {
		configPath = tracker.DefaultConfigPath()
	}
	fmt.Printf("Tracked-list file: %s\n", configPath)

	result := tracker.ValidateConfigFile(configPath)
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("  error: %v\n", e)
	}
	if !result.Valid {
		return fmt.Errorf("tracked-list file failed validation")
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	paths := mgr.Paths()
	fmt.Printf("Tracked files: %d\n", len(paths))

	missing := 0
	for _, p := range paths {
		if fi, err := os.Stat(p); err != nil || !fi.Mode().IsRegular() {
			fmt.Printf("  warning: %s is missing or not a regular file (counts as zero tasks)\n", p)
			missing++
		}
	}
	if missing == 0 && len(result.Warnings) == 0 {
		fmt.Println("OK")
	}
	return nil
}
