package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/blackboxhq/roadmap-go/internal/config"
	"github.com/blackboxhq/roadmap-go/internal/publish"
	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// doctorCommand checks dependencies, config, and roadmap file validity.
func doctorCommand(cfg *config.Config, args []string) error {
	// Parse doctor-specific flags
	fs := flag.NewFlagSet("roadmap doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

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

	fmt.Println("Roadmap Doctor")
	fmt.Println("==============")
	fmt.Println()

	allOK := true

	// Check project root
	fmt.Printf("Project root: %s\n", cfg.ProjectRoot)
	if _, err := os.Stat(cfg.ProjectRoot); err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	// Check roadmap file
	roadmapPath := cfg.RoadmapPath()
	fmt.Printf("Roadmap file: %s\n", roadmapPath)
	info, err := os.Stat(roadmapPath)
	switch {
	case os.IsNotExist(err):
		fmt.Println("  ❌ Not found")
		allOK = false
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Println("  ✅ OK")
		if !checkRoadmapContent(cfg, roadmapPath, *verbose) {
			allOK = false
		}
	}
	fmt.Println()

	// Check schema file
	if schemaPath := cfg.SchemaPath(); schemaPath != "" {
		fmt.Printf("Schema file: %s\n", schemaPath)
		if info, err := os.Stat(schemaPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("  ⚠️  Not found (minimal checks used instead)")
			} else {
				fmt.Printf("  ❌ Error: %v\n", err)
				allOK = false
			}
		} else if info.IsDir() {
			fmt.Println("  ❌ Error: path is a directory")
			allOK = false
		} else {
			fmt.Println("  ✅ OK")
		}
		fmt.Println()
	}

	// Check the gh CLI
	fmt.Println("Dependencies:")
	runner := &publish.RealCommandRunner{}
	if output, err := runner.Run("gh", "--version"); err != nil {
		fmt.Println("  ❌ gh: not found (install from https://cli.github.com/)")
		allOK = false
	} else {
		fmt.Println("  ✅ gh: OK")
		if *verbose {
			fmt.Printf("     %s", output)
		}
	}
	fmt.Println()

	// Check publish config
	fmt.Println("Config:")
	if cfg.Repo == "" {
		fmt.Println("  ⚠️  Repo: not set (publish needs -repo or GH_REPO)")
	} else {
		fmt.Printf("  ✅ Repo: %s\n", cfg.Repo)
	}
	if *verbose {
		fmt.Printf("  Docs dir: %s\n", cfg.DocsPath())
		fmt.Printf("  Import dir: %s\n", cfg.ImportPath())
	}
	fmt.Println()

	// Overall status
	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Roadmap may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// checkRoadmapContent loads and validates the roadmap file, printing
// per-record findings. Returns false when validation fails.
func checkRoadmapContent(cfg *config.Config, path string, verbose bool) bool {
	tasks, stats, err := roadmap.Load(path)
	if err != nil {
		fmt.Printf("  ❌ Load error: %v\n", err)
		return false
	}

	result, err := roadmap.ValidateFile(path, roadmap.ValidationOptions{SchemaPath: cfg.SchemaPath()})
	if err != nil {
		fmt.Printf("  ❌ Validation error: %v\n", err)
		return false
	}
	for _, w := range result.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	if result.Valid {
		fmt.Println("  ✅ Valid")
	} else {
		fmt.Println("  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Printf("     - %v\n", e)
		}
		return false
	}

	if stats.Skipped() > 0 {
		fmt.Printf("  ⚠️  Skipped records: %d without title, %d not objects\n",
			stats.SkippedNoTitle, stats.SkippedNonObject)
	}
	if verbose {
		fmt.Printf("  Tasks: %d\n", len(tasks))
		for _, t := range tasks {
			fmt.Printf("    - [%s] %s: %s\n", t.Status, t.Phase, t.Title)
		}
	}
	return true
}
