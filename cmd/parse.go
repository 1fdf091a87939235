package cmd

import (
	"fmt"

	"github.com/nibzard/checkmarks-go/internal/checklist"
	"github.com/nibzard/checkmarks-go/internal/config"
	"github.com/nibzard/checkmarks-go/internal/render"
)

// parseCommand parses a single Markdown file and prints its progress.
func parseCommand(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: checkmarks parse <file>")
	}

	st := checklist.Parse(args[0])
	fmt.Println(st.Title)
	fmt.Println(render.Bar(st.Completed, st.Total, cfg.BarWidth))
	return nil
}
