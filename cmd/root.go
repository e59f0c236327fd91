// Package cmd implements the CLI command structure for roadmap.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackboxhq/roadmap-go/internal/config"
	"github.com/blackboxhq/roadmap-go/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the roadmap CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("roadmap", flag.ContinueOnError)
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

	// Diagnostics go to stderr so generated output stays clean
	logger := logging.New(os.Stderr, logging.Options{
		Level:           cfg.LogLevel,
		Format:          cfg.LogFormat,
		ReportTimestamp: cfg.LogTimestamps,
	})

	// Determine the subcommand
	// If no args or first arg is a flag, use "generate" as default
	subcommand := "generate"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	// Execute the subcommand
	switch subcommand {
	case "generate":
		return generateCommand(cfg, logger, remainingArgs)
	case "publish":
		return publishCommand(ctx, cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "board":
		return boardCommand(cfg, remainingArgs)
	case "ls":
		return lsCommand(cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// If it's not a recognized command, it might be a roadmap file
		// path for generate. Check if it's an existing file.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			abs, err := filepath.Abs(subcommand)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", subcommand, err)
			}
			cfg.RoadmapFile = abs
			cfg.ProjectRoot = filepath.Dir(abs)
			return generateCommand(cfg, logger, remainingArgs)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints the version.
func versionCommand() error {
	fmt.Printf("roadmap version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Roadmap - Generate roadmap artifacts and publish them as GitHub issues")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  roadmap [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate [file]  Write documents and CSV exports (default command)")
	fmt.Fprintln(w, "  publish          Create one GitHub issue per task via the gh CLI")
	fmt.Fprintln(w, "  board            Browse the roadmap in a terminal kanban view")
	fmt.Fprintln(w, "  ls [phase]       List tasks grouped by phase")
	fmt.Fprintln(w, "  doctor           Check dependencies, config, and roadmap file validity")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publish Options (use with 'publish' command):")
	fmt.Fprintln(w, "  -repo string")
	fmt.Fprintln(w, "        owner/name repository slug (or set GH_REPO)")
	fmt.Fprintln(w, "  -dry-run")
	fmt.Fprintln(w, "        Print commands without creating issues")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate Options (use with 'generate' command):")
	fmt.Fprintln(w, "  -docs-dir string")
	fmt.Fprintln(w, "        Output directory for documents and the generic CSV (default \"docs\")")
	fmt.Fprintln(w, "  -import-dir string")
	fmt.Fprintln(w, "        Output directory for the issues-import CSV (default \"tools/github\")")
}
