package cmd

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/blackboxhq/roadmap-go/internal/config"
	"github.com/blackboxhq/roadmap-go/internal/export"
	"github.com/blackboxhq/roadmap-go/internal/render"
	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// generateCommand writes all four roadmap artifacts.
func generateCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	// Parse any additional flags for the generate command
	fs := flag.NewFlagSet("roadmap generate", flag.ContinueOnError)
	docsDir := fs.String("docs-dir", cfg.DocsDir, "Output directory for documents and the generic CSV")
	importDir := fs.String("import-dir", cfg.ImportDir, "Output directory for the issues-import CSV")

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
	cfg.DocsDir = *docsDir
	cfg.ImportDir = *importDir

	path := cfg.RoadmapPath()
	tasks, stats, err := roadmap.Load(path)
	if err != nil {
		return err
	}
	if stats.Skipped() > 0 {
		logger.Warn("skipped records during load",
			"no_title", stats.SkippedNoTitle,
			"non_object", stats.SkippedNonObject)
	}

	if err := render.WriteDocs(cfg.DocsPath(), filepath.Base(path), tasks); err != nil {
		return err
	}
	if err := export.WriteTable(filepath.Join(cfg.DocsPath(), export.TableFile), tasks); err != nil {
		return err
	}
	if err := export.WriteIssueImport(filepath.Join(cfg.ImportPath(), export.ImportFile), tasks); err != nil {
		return err
	}

	fmt.Printf("Generated roadmap assets for %d tasks under %s/ and %s/.\n",
		len(tasks), cfg.DocsDir, cfg.ImportDir)
	return nil
}
