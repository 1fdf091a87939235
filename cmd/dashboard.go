package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/checkmarks-go/internal/config"
	"github.com/nibzard/checkmarks-go/internal/render"
	"github.com/nibzard/checkmarks-go/internal/tracker"
	"github.com/nibzard/checkmarks-go/internal/ui"
)

// dashboardCommand shows the dashboard for all tracked files.
func dashboardCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("checkmarks dashboard", flag.ContinueOnError)
	tableView := fs.Bool("table", false, "Display as a styled table")
	progressView := fs.Bool("progress", false, "Display as animated progress bars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	renderer := cfg.Renderer
	if *tableView {
		renderer = config.RendererTable
	}
	if *progressView {
		renderer = config.RendererProgress
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	stats := mgr.Stats()
	if len(stats) == 0 {
		fmt.Println("No files tracked yet. Use 'checkmarks add <file.md>' first.")
		return nil
	}

	if renderer == config.RendererProgress {
		if ui.IsTTY(os.Stdout) {
			return ui.RunDashboard(ctx, mgr)
		}
		logger.Warn("progress view requires a TTY, falling back to plain output")
		renderer = config.RendererPlain
	}

	var r render.Renderer
	switch renderer {
	case config.RendererTable:
		r = render.Table{BarWidth: cfg.BarWidth}
	default:
		r = render.Plain{BarWidth: cfg.BarWidth}
	}
	return r.Render(os.Stdout, stats)
}

// exportCommand writes the dashboard to a standalone HTML file.
func exportCommand(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: checkmarks export <output.html>")
	}

	mgr := tracker.NewManager(cfg.ConfigFile)
	stats := mgr.Stats()
	if len(stats) == 0 {
		fmt.Println("No files are being tracked yet. Nothing to export.")
		return nil
	}

	if err := render.ExportHTML(args[0], stats, cfg.BarWidth); err != nil {
		return err
	}
	fmt.Printf("Dashboard exported to: %s\n", args[0])
	return nil
}
