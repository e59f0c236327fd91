package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/blackboxhq/roadmap-go/internal/config"
	"github.com/blackboxhq/roadmap-go/internal/publish"
	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// publishCommand creates one GitHub issue per task.
func publishCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	// Parse publish-specific flags
	fs := flag.NewFlagSet("roadmap publish", flag.ContinueOnError)
	repo := fs.String("repo", cfg.Repo, "owner/name repository slug")
	dryRun := fs.Bool("dry-run", false, "Print commands without creating issues")

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

	tasks, stats, err := roadmap.Load(cfg.RoadmapPath())
	if err != nil {
		return err
	}
	if stats.Skipped() > 0 {
		logger.Warn("skipped records during load",
			"no_title", stats.SkippedNoTitle,
			"non_object", stats.SkippedNonObject)
	}

	pub := publish.New(publish.Options{
		Repo:   *repo,
		DryRun: *dryRun,
		Logger: logger,
	})

	res, err := pub.Publish(ctx, tasks)
	if err != nil {
		return err
	}
	if res.Failed > 0 {
		logger.Warn("some issues were not created", "failed", res.Failed)
	}

	fmt.Printf("Done. Created %d issues.\n", res.Created)
	return nil
}
