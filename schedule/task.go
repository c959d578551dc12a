package schedule

import "fmt"

// Task is a time interval [Start, End) competing for one of K resources.
// Resource 0 means the task has not been assigned yet.
type Task struct {
	ID       int `json:"id"`
	Start    int `json:"start"`
	End      int `json:"end"`
	Resource int `json:"resource,omitempty"`
}

// Overlaps reports whether two task intervals intersect. Intervals are
// half-open, so a task ending exactly when another starts does not conflict.
func (t Task) Overlaps(other Task) bool {
	return !(t.End <= other.Start || other.End <= t.Start)
}

func (t Task) String() string {
	return fmt.Sprintf("Task%d[%d-%d]", t.ID, t.Start, t.End)
}
