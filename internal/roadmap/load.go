package roadmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is the roadmap file name looked up during root discovery.
const DefaultFile = "roadmap.json"

// NotFoundError reports a missing roadmap file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("roadmap file not found: %s", e.Path)
}

// Unwrap returns the underlying error.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed JSON in the roadmap file, including the
// decoder's byte offset when available.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	var syn *json.SyntaxError
	if errors.As(e.Err, &syn) {
		return fmt.Sprintf("invalid JSON in %s at offset %d: %v", e.Path, syn.Offset, syn)
	}
	var typ *json.UnmarshalTypeError
	if errors.As(e.Err, &typ) {
		return fmt.Sprintf("invalid JSON in %s at offset %d: %v", e.Path, typ.Offset, typ)
	}
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Stats counts records dropped during normalization.
type Stats struct {
	Loaded           int
	SkippedNoTitle   int
	SkippedNonObject int
}

// Skipped returns the total number of dropped records.
func (s Stats) Skipped() int {
	return s.SkippedNoTitle + s.SkippedNonObject
}

// FindRoot walks upward from start until it finds a directory
// containing name, falling back to start when no ancestor has it.
func FindRoot(start, name string) string {
	abs, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	cur := abs
	for {
		if _, err := os.Stat(filepath.Join(cur, name)); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs
		}
		cur = parent
	}
}

// Load reads the roadmap file at path and returns its normalized tasks
// along with skip counts. Missing files yield a *NotFoundError,
// malformed JSON a *ParseError.
func Load(path string) ([]Task, Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Stats{}, &NotFoundError{Path: path, Err: err}
		}
		return nil, Stats{}, fmt.Errorf("read roadmap file: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, Stats{}, &ParseError{Path: path, Err: err}
	}

	var stats Stats
	tasks := make([]Task, 0, len(records))
	for _, rec := range records {
		var fields map[string]any
		if err := json.Unmarshal(rec, &fields); err != nil || fields == nil {
			stats.SkippedNonObject++
			continue
		}
		task := normalize(fields)
		if task.Title == "" {
			stats.SkippedNoTitle++
			continue
		}
		tasks = append(tasks, task)
	}
	stats.Loaded = len(tasks)
	return tasks, stats, nil
}

// decodeRecords accepts both accepted file shapes: an object with a
// "tasks" array, or a bare array of records.
func decodeRecords(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc struct {
		Tasks []json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

// normalize produces a fully-populated Task from an arbitrary record.
// The returned Task has an empty Title only when the record is
// untitled, which callers treat as a drop.
func normalize(fields map[string]any) Task {
	phase := strings.TrimSpace(stringField(fields, "phase"))
	if phase == "" {
		phase = PhaseUnassigned
	}
	status := strings.TrimSpace(stringField(fields, "status"))
	if status == "" {
		status = DefaultStatus
	}
	return Task{
		Title:       strings.TrimSpace(stringField(fields, "title")),
		Description: description(fields),
		Phase:       phase,
		Status:      status,
	}
}

// description resolves the description from the current key or either
// legacy alias, oldest files using the misspelled "desciptio".
func description(fields map[string]any) string {
	for _, key := range []string{"description", "desc", "desciptio"} {
		if v := strings.TrimSpace(stringField(fields, key)); v != "" {
			return v
		}
	}
	return ""
}

func stringField(fields map[string]any, key string) string {
	v, _ := fields[key].(string)
	return v
}
