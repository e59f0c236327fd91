// Package export writes the delimited roadmap artifacts.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// Output file names. TableFile lives in the docs directory, ImportFile
// in the issues-import directory.
const (
	TableFile  = "roadmap.csv"
	ImportFile = "issues_import.csv"
)

// WriteTable writes the generic table: one row per task in original
// order, verbatim values.
func WriteTable(path string, tasks []roadmap.Task) error {
	rows := make([][]string, 0, len(tasks)+1)
	rows = append(rows, []string{"title", "description", "phase", "status"})
	for _, t := range tasks {
		rows = append(rows, []string{t.Title, t.Description, t.Phase, t.Status})
	}
	return writeRows(path, rows)
}

// WriteIssueImport writes the GitHub-issue-import-shaped table. Body
// falls back to the placeholder when the description is empty.
func WriteIssueImport(path string, tasks []roadmap.Task) error {
	rows := make([][]string, 0, len(tasks)+1)
	rows = append(rows, []string{"Title", "Body", "Labels"})
	for _, t := range tasks {
		rows = append(rows, []string{t.Title, t.Body(), strings.Join(t.Labels(), ",")})
	}
	return writeRows(path, rows)
}

// writeRows replaces path with the given CSV rows, creating parent
// directories as needed.
func writeRows(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}
