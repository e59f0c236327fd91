package cmd

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/blackboxhq/roadmap-go/internal/config"
	"github.com/blackboxhq/roadmap-go/internal/roadmap"
	"github.com/blackboxhq/roadmap-go/internal/ui"
)

// boardCommand launches the terminal kanban browser.
func boardCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("roadmap board", flag.ContinueOnError)

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 {
		cfg.RoadmapFile = remaining[0]
	}

	path := cfg.RoadmapPath()
	tasks, _, err := roadmap.Load(path)
	if err != nil {
		return err
	}

	return ui.RunBoard(filepath.Base(path), tasks)
}
