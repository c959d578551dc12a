package data_model

// AllModels lists every table the puzzle library schema contains, in
// migration order.
func AllModels() []any {
	return []any{
		&PuzzleEntry{},
		&SolveRecord{},
	}
}
