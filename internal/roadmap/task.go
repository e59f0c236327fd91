package roadmap

// Phase labels with a defined delivery order. Any other label is kept
// as its own bucket.
const (
	PhaseNow        = "Now"
	PhaseNext       = "Next"
	PhaseLater      = "Later"
	PhaseUnassigned = "Unassigned"
)

// DefaultStatus is applied when a record has no status.
const DefaultStatus = "To Do"

// PlaceholderBody is used as the issue body when a task has no
// description. It also appears in the issues-import CSV.
const PlaceholderBody = "Imported from roadmap."

// OrderedPhases lists the phases rendered in the roadmap documents, in
// delivery-priority order. Unassigned is intentionally not included.
var OrderedPhases = []string{PhaseNow, PhaseNext, PhaseLater}

// Task is one roadmap item. All four fields are populated after Load;
// downstream packages never re-check for missing values.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Phase       string `json:"phase"`
	Status      string `json:"status"`
}

// Body returns the issue body for the task, falling back to
// PlaceholderBody when the description is empty.
func (t Task) Body() string {
	if t.Description == "" {
		return PlaceholderBody
	}
	return t.Description
}

// Labels returns the issue labels derived from the task.
func (t Task) Labels() []string {
	return []string{"phase:" + t.Phase, "status:" + t.Status}
}
