// Package chart defines the schedule data a Gantt chart is drawn from:
// tasks, their dependencies, and the time scale of the grid.
//
// A [Chart] is plain input. Nothing in this package positions anything on
// screen; the layout packages turn tasks into bars and dates into grid
// columns. The only logic here is parsing of the enumerations and
// [Chart.Validate], which checks the referential integrity the layout
// packages assume.
package chart

import (
	"time"

	"github.com/matzehuels/ganttline/pkg/errors"
)

// TaskType selects how a task is drawn.
type TaskType string

const (
	TypeTask      TaskType = "task"
	TypeMilestone TaskType = "milestone"
	TypeProject   TaskType = "project"
)

// Task is one schedule item.
type Task struct {
	ID           string
	Name         string
	Start, End   time.Time
	Progress     float64 // percent, 0..100
	Type         TaskType
	Dependencies []Dependency
}

// Dependency makes the owning task the target of a relation whose source
// is the task with the given ID.
type Dependency struct {
	ID   string
	Type RelationType
}

// Chart is the full input for one render.
type Chart struct {
	Tasks    []Task
	ViewMode ViewMode
}

// Task returns the task with the given ID.
func (c *Chart) Task(id string) (Task, bool) {
	for _, t := range c.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Validate checks that task IDs are well formed and unique, that no task
// ends before it starts, that progress is a percentage, and that every
// dependency points at a known task other than itself.
func (c *Chart) Validate() error {
	seen := make(map[string]struct{}, len(c.Tasks))
	for _, t := range c.Tasks {
		if err := errors.ValidateTaskID(t.ID); err != nil {
			return err
		}
		if _, dup := seen[t.ID]; dup {
			return errors.New(errors.ErrCodeInvalidChart, "duplicate task id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.End.Before(t.Start) {
			return errors.New(errors.ErrCodeInvalidChart, "task %q ends before it starts", t.ID)
		}
		if t.Progress < 0 || t.Progress > 100 {
			return errors.New(errors.ErrCodeInvalidChart, "task %q progress %v out of range 0..100", t.ID, t.Progress)
		}
		switch t.Type {
		case "", TypeTask, TypeMilestone, TypeProject:
		default:
			return errors.New(errors.ErrCodeInvalidChart, "task %q has unknown type %q", t.ID, t.Type)
		}
	}

	for _, t := range c.Tasks {
		for _, d := range t.Dependencies {
			if d.ID == t.ID {
				return errors.New(errors.ErrCodeInvalidChart, "task %q depends on itself", t.ID)
			}
			if _, ok := seen[d.ID]; !ok {
				return errors.New(errors.ErrCodeUnknownTask, "task %q depends on unknown task %q", t.ID, d.ID)
			}
		}
	}
	return nil
}

// Bounds returns the earliest start and the latest end over all tasks.
// Both are zero for a chart without tasks.
func (c *Chart) Bounds() (start, end time.Time) {
	for i, t := range c.Tasks {
		if i == 0 || t.Start.Before(start) {
			start = t.Start
		}
		if i == 0 || t.End.After(end) {
			end = t.End
		}
	}
	return start, end
}
