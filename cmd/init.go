package cmd

import (
	"fmt"
	"os"

	"github.com/nibzard/checkmarks-go/internal/config"
)

// initCommand writes a starter settings file into the current directory.
func initCommand(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: checkmarks init")
	}

	if _, err := os.Stat(config.SettingsFileName); err == nil {
		return fmt.Errorf("%s already exists", config.SettingsFileName)
	}

	if err := os.WriteFile(config.SettingsFileName, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.SettingsFileName, err)
	}
	fmt.Printf("Created %s\n", config.SettingsFileName)
	return nil
}
