package base

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santidefelice/cspkit/schedule"
)

// Represents a scheduling problem stored on disk: a task list plus the
// resource budget to assign within.
type TaskSetFile struct {
	Name         string          `json:"name"`
	MaxResources int             `json:"max_resources"`
	Tasks        []schedule.Task `json:"tasks"`
}

// Generates task set struct from JSON file.
func ReadTaskSetFile(infoPath string) (*TaskSetFile, error) {
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, fmt.Errorf("can't read task set file %s: %s", infoPath, err)
	}

	info := &TaskSetFile{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("unable to parse task set data in %s: %s", infoPath, err)
	}

	for i, task := range info.Tasks {
		if task.End <= task.Start {
			return nil, fmt.Errorf("task %d in %s has empty interval [%d, %d)", task.ID, infoPath, task.Start, task.End)
		}
		if task.ID == 0 {
			info.Tasks[i].ID = i + 1
		}
	}

	if info.MaxResources < 0 {
		return nil, fmt.Errorf("max_resources in %s is negative", infoPath)
	}

	return info, nil
}
