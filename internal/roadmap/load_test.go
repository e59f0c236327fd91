package roadmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadNormalization(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []Task
	}{
		{
			name: "tasks key",
			json: `{"tasks": [{"title": "A", "description": "d", "phase": "Now", "status": "Doing"}]}`,
			want: []Task{{Title: "A", Description: "d", Phase: "Now", Status: "Doing"}},
		},
		{
			name: "bare array",
			json: `[{"title": "A", "phase": "Next"}]`,
			want: []Task{{Title: "A", Phase: "Next", Status: "To Do"}},
		},
		{
			name: "defaults applied",
			json: `{"tasks": [{"title": "A"}]}`,
			want: []Task{{Title: "A", Phase: "Unassigned", Status: "To Do"}},
		},
		{
			name: "blank phase and status collapse to defaults",
			json: `{"tasks": [{"title": "A", "phase": "  ", "status": "\t"}]}`,
			want: []Task{{Title: "A", Phase: "Unassigned", Status: "To Do"}},
		},
		{
			name: "legacy desc key",
			json: `{"tasks": [{"title": "A", "desc": "legacy"}]}`,
			want: []Task{{Title: "A", Description: "legacy", Phase: "Unassigned", Status: "To Do"}},
		},
		{
			name: "misspelled legacy key",
			json: `{"tasks": [{"title": "A", "desciptio": "oldest"}]}`,
			want: []Task{{Title: "A", Description: "oldest", Phase: "Unassigned", Status: "To Do"}},
		},
		{
			name: "description wins over aliases",
			json: `{"tasks": [{"title": "A", "description": "new", "desc": "old", "desciptio": "oldest"}]}`,
			want: []Task{{Title: "A", Description: "new", Phase: "Unassigned", Status: "To Do"}},
		},
		{
			name: "values trimmed",
			json: `{"tasks": [{"title": "  A  ", "phase": " Later ", "status": " Done "}]}`,
			want: []Task{{Title: "A", Phase: "Later", Status: "Done"}},
		},
		{
			name: "unrecognized phase preserved",
			json: `{"tasks": [{"title": "A", "phase": "Someday"}]}`,
			want: []Task{{Title: "A", Phase: "Someday", Status: "To Do"}},
		},
		{
			name: "duplicate titles pass through",
			json: `{"tasks": [{"title": "A"}, {"title": "A"}]}`,
			want: []Task{
				{Title: "A", Phase: "Unassigned", Status: "To Do"},
				{Title: "A", Phase: "Unassigned", Status: "To Do"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "roadmap.json", tt.json)
			got, stats, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("task[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if stats.Loaded != len(tt.want) {
				t.Errorf("stats.Loaded = %d, want %d", stats.Loaded, len(tt.want))
			}
		})
	}
}

func TestLoadSkipCounts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "roadmap.json",
		`{"tasks": [{"title": "A"}, "not an object", 42, null, {"notitle": true}, {"title": "   "}]}`)

	tasks, stats, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if stats.SkippedNonObject != 3 {
		t.Errorf("SkippedNonObject = %d, want 3", stats.SkippedNonObject)
	}
	if stats.SkippedNoTitle != 2 {
		t.Errorf("SkippedNoTitle = %d, want 2", stats.SkippedNoTitle)
	}
	if stats.Skipped() != 5 {
		t.Errorf("Skipped() = %d, want 5", stats.Skipped())
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.json")

	_, _, err := Load(path)
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nfe.Path != path {
		t.Errorf("error path = %q, want %q", nfe.Path, path)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"truncated object", `{"tasks": [{"title": "A"`},
		{"bad token", `{tasks: []}`},
		{"wrong tasks type", `{"tasks": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "roadmap.json", tt.json)
			_, _, err := Load(path)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
		})
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, root, DefaultFile, `{"tasks": []}`)

	if got := FindRoot(nested, DefaultFile); got != root {
		t.Errorf("FindRoot = %q, want %q", got, root)
	}
}

func TestFindRootFallsBackToStart(t *testing.T) {
	start := t.TempDir()

	got := FindRoot(start, "no-such-file-anywhere.json")
	if got != start {
		t.Errorf("FindRoot = %q, want start dir %q", got, start)
	}
}

func TestTaskBodyAndLabels(t *testing.T) {
	withDesc := Task{Title: "A", Description: "d", Phase: "Now", Status: "To Do"}
	if withDesc.Body() != "d" {
		t.Errorf("Body() = %q, want %q", withDesc.Body(), "d")
	}

	noDesc := Task{Title: "A", Phase: "Now", Status: "To Do"}
	if noDesc.Body() != PlaceholderBody {
		t.Errorf("Body() = %q, want placeholder", noDesc.Body())
	}

	labels := withDesc.Labels()
	if len(labels) != 2 || labels[0] != "phase:Now" || labels[1] != "status:To Do" {
		t.Errorf("Labels() = %v", labels)
	}
}
