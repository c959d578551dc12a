package schedule

// Scheduler assigns resources to overlapping tasks by backtracking search.
// The problem is graph coloring in disguise: tasks are vertices, overlaps
// are edges and resources are colors.
type Scheduler struct {
	tasks        []Task
	maxResources int

	// conflicts[i] lists indexes of tasks overlapping tasks[i].
	conflicts [][]int
}

// NewScheduler copies the task list and precomputes the conflict graph with
// a pairwise overlap scan.
func NewScheduler(tasks []Task, maxResources int) *Scheduler {
	owned := make([]Task, len(tasks))
	copy(owned, tasks)
	for i := range owned {
		owned[i].Resource = 0
	}

	s := &Scheduler{
		tasks:        owned,
		maxResources: maxResources,
		conflicts:    make([][]int, len(owned)),
	}

	for i := 0; i < len(owned); i++ {
		for j := i + 1; j < len(owned); j++ {
			if owned[i].Overlaps(owned[j]) {
				s.conflicts[i] = append(s.conflicts[i], j)
				s.conflicts[j] = append(s.conflicts[j], i)
			}
		}
	}

	return s
}

// Tasks returns a copy of the task list with current resource assignments.
func (s *Scheduler) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// MaxResources returns the resource budget the scheduler searches within.
func (s *Scheduler) MaxResources() int {
	return s.maxResources
}

// ConflictsOf returns the tasks overlapping the task at the given index.
func (s *Scheduler) ConflictsOf(index int) []Task {
	if index < 0 || index >= len(s.tasks) {
		return nil
	}

	out := make([]Task, 0, len(s.conflicts[index]))
	for _, j := range s.conflicts[index] {
		out = append(out, s.tasks[j])
	}
	return out
}

// Assign searches for a conflict-free resource assignment using resources
// 1..K. When no assignment exists every task is left unassigned.
func (s *Scheduler) Assign() bool {
	return s.assignFrom(0)
}

func (s *Scheduler) assignFrom(index int) bool {
	if index == len(s.tasks) {
		return true
	}

	for resource := 1; resource <= s.maxResources; resource++ {
		if !s.isValidAssignment(index, resource) {
			continue
		}

		s.tasks[index].Resource = resource

		if s.assignFrom(index + 1) {
			return true
		}

		s.tasks[index].Resource = 0
	}

	return false
}

// isValidAssignment checks the resource against every already-assigned
// conflicting task. Only neighbors in the conflict graph matter, so the
// check is O(degree) instead of O(n).
func (s *Scheduler) isValidAssignment(index, resource int) bool {
	for _, j := range s.conflicts[index] {
		if s.tasks[j].Resource == resource {
			return false
		}
	}
	return true
}

// MinResources finds the smallest resource count that admits a conflict-free
// assignment, trying K = 1..len(tasks) in order. The returned task list
// carries the assignment found for that K. Zero tasks need zero resources.
func MinResources(tasks []Task) (int, []Task) {
	if len(tasks) == 0 {
		return 0, nil
	}

	for k := 1; k <= len(tasks); k++ {
		s := NewScheduler(tasks, k)
		if s.Assign() {
			return k, s.Tasks()
		}
	}

	// Unreachable: n resources always suffice for n tasks.
	return len(tasks), tasks
}
