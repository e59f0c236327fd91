package cmd

import (
	"flag"
	"fmt"

	"github.com/blackboxhq/roadmap-go/internal/config"
	"github.com/blackboxhq/roadmap-go/internal/render"
	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// lsCommand lists tasks grouped by phase with deterministic ordering.
func lsCommand(cfg *config.Config, args []string) error {
	// Parse ls-specific flags
	fs := flag.NewFlagSet("roadmap ls", flag.ContinueOnError)
	phaseFilter := fs.String("phase", "", "Filter by phase (Now|Next|Later|Unassigned|...)")
	verbose := fs.Bool("v", false, "Show descriptions")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) >= 1 && *phaseFilter == "" {
		*phaseFilter = remaining[0]
		remaining = remaining[1:]
	}
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 {
		cfg.RoadmapFile = remaining[0]
	}

	tasks, _, err := roadmap.Load(cfg.RoadmapPath())
	if err != nil {
		return err
	}

	buckets := render.Buckets(tasks)
	for _, phase := range render.PhaseOrder(buckets) {
		if *phaseFilter != "" && phase != *phaseFilter {
			continue
		}
		group := buckets[phase]
		if len(group) == 0 {
			continue
		}
		fmt.Printf("%s (%d):\n", phase, len(group))
		for _, t := range group {
			fmt.Printf("  [%s] %s\n", t.Status, t.Title)
			if *verbose && t.Description != "" {
				fmt.Printf("      %s\n", t.Description)
			}
		}
		fmt.Println()
	}

	return nil
}
