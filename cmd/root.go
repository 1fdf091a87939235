// Package cmd implements the CLI command structure for checkmarks.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/checkmarks-go/internal/config"
	"github.com/nibzard/checkmarks-go/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the checkmarks CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkmarks", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)

	// Determine the subcommand; no arguments means dashboard.
	subcommand := "dashboard"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "remove", "rm":
		return removeCommand(cfg, logger, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, remainingArgs)
	case "parse":
		return parseCommand(cfg, remainingArgs)
	case "dashboard":
		return dashboardCommand(ctx, cfg, logger, remainingArgs)
	case "export":
		return exportCommand(cfg, remainingArgs)
	case "scan":
		return scanCommand(cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "init":
		return initCommand(remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// An existing file path parses directly, like "checkmarks todo.md".
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return parseCommand(cfg, []string{subcommand})
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints the version.
func versionCommand() error {
	fmt.Printf("checkmarks %s\n", Version)
	return nil
}

// printUsage prints CLI usage information.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `checkmarks - Track progress in Markdown checklists.

Usage:
  checkmarks [flags] <command> [args]

Commands:
  add <file>         Add a Markdown file to the tracked list
  remove <file>      Remove a Markdown file from the tracked list
  list               List tracked Markdown files
  parse <file>       Parse a single Markdown file and show progress
  dashboard          Show the dashboard (--table or --progress for rich views)
  export <out.html>  Export the dashboard to HTML
  scan <dir>         Scan a directory for Markdown files with tasks
  doctor             Check the tracked-list file and tracked paths
  init               Write a starter .checkmarks.toml in the current directory
  version            Show version
  help               Show this help

Running with no command shows the dashboard. A file path given as the
command is parsed directly.

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// logSaveError reports a tracked-list write failure.
func logSaveError(logger *log.Logger, err error) error {
	logger.Error("saving tracked list", "err", err)
	return err
}
