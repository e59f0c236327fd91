// Package render writes the human-readable roadmap documents.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// Output file names, relative to the docs directory.
const (
	DocFile    = "ROADMAP.md"
	KanbanFile = "ROADMAP_KANBAN.md"
)

// Descriptions longer than maxDescription are cut to truncateAt bytes
// plus an ellipsis in the grouped document.
const (
	maxDescription = 160
	truncateAt     = 157
)

// Buckets groups tasks by phase, preserving unrecognized labels as
// their own buckets, and sorts each bucket by (status, lowercased
// title). The three ordered phases and Unassigned are always present,
// possibly empty.
func Buckets(tasks []roadmap.Task) map[string][]roadmap.Task {
	byPhase := map[string][]roadmap.Task{
		roadmap.PhaseNow:        nil,
		roadmap.PhaseNext:       nil,
		roadmap.PhaseLater:      nil,
		roadmap.PhaseUnassigned: nil,
	}
	for _, t := range tasks {
		byPhase[t.Phase] = append(byPhase[t.Phase], t)
	}
	for _, bucket := range byPhase {
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].Status != bucket[j].Status {
				return bucket[i].Status < bucket[j].Status
			}
			return strings.ToLower(bucket[i].Title) < strings.ToLower(bucket[j].Title)
		})
	}
	return byPhase
}

// PhaseOrder returns the bucket keys in display order: the ordered
// phases first, then Unassigned, then any remaining labels sorted.
func PhaseOrder(buckets map[string][]roadmap.Task) []string {
	order := append([]string{}, roadmap.OrderedPhases...)
	order = append(order, roadmap.PhaseUnassigned)
	known := make(map[string]bool, len(order))
	for _, phase := range order {
		known[phase] = true
	}
	var rest []string
	for phase := range buckets {
		if !known[phase] {
			rest = append(rest, phase)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// Document renders the grouped roadmap. Only the ordered phases are
// rendered; Unassigned and unknown buckets are intentionally excluded.
// source names the roadmap file in the attribution line.
func Document(tasks []roadmap.Task, source string) string {
	byPhase := Buckets(tasks)
	var b strings.Builder
	b.WriteString("# Roadmap\n\n")
	fmt.Fprintf(&b, "Source: `%s`. Phases reflect delivery priority. Update with `roadmap generate`.\n\n", source)
	for _, phase := range roadmap.OrderedPhases {
		group := byPhase[phase]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", phase)
		for _, t := range group {
			fmt.Fprintf(&b, "- %s — %s\n", t.Title, t.Status)
			if t.Description != "" {
				fmt.Fprintf(&b, "  - %s\n", oneLine(t.Description))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Kanban renders the compact one-line-per-task view with the same
// phase ordering and exclusion rule as Document.
func Kanban(tasks []roadmap.Task) string {
	byPhase := Buckets(tasks)
	var b strings.Builder
	b.WriteString("# Roadmap Kanban\n\n")
	b.WriteString("Visual grouping by phase. Use alongside `docs/ROADMAP.md`.\n\n")
	for _, phase := range roadmap.OrderedPhases {
		group := byPhase[phase]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", phase)
		for _, t := range group {
			fmt.Fprintf(&b, "- [%s] %s\n", t.Status, t.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteDocs renders both documents under dir, creating it if needed.
// Prior content is fully replaced.
func WriteDocs(dir, source string, tasks []roadmap.Task) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create docs dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DocFile), []byte(Document(tasks, source)), 0644); err != nil {
		return fmt.Errorf("write roadmap document: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, KanbanFile), []byte(Kanban(tasks)), 0644); err != nil {
		return fmt.Errorf("write kanban document: %w", err)
	}
	return nil
}

// oneLine collapses a description to a single line, truncating long
// values so the grouped document stays scannable. Lengths are counted
// in runes so multibyte text is never split mid-character.
func oneLine(desc string) string {
	s := strings.TrimSpace(strings.ReplaceAll(desc, "\n", " "))
	if r := []rune(s); len(r) > maxDescription {
		s = string(r[:truncateAt]) + "..."
	}
	return s
}
