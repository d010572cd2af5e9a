package models

import "fmt"

// WorkerAction is what a worker spends each tick on: idling or gathering
// a single resource.
type WorkerAction struct {
	gathering bool
	resource  Resource
}

// Idle is the action of a worker that contributes nothing on tick
var Idle = WorkerAction{}

// Gather returns the action of gathering r
func Gather(r Resource) WorkerAction {
	return WorkerAction{gathering: true, resource: r}
}

// IsIdle reports whether the action is Idle
func (a WorkerAction) IsIdle() bool {
	return !a.gathering
}

// Gathering returns the gathered resource and true, or false when idle
func (a WorkerAction) Gathering() (Resource, bool) {
	return a.resource, a.gathering
}

func (a WorkerAction) String() string {
	if !a.gathering {
		return "Idle"
	}
	return fmt.Sprintf("Gather(%s)", a.resource)
}

// ParseWorkerAction accepts "idle" or a resource name
func ParseWorkerAction(s string) (WorkerAction, error) {
	if s == "" || s == "idle" || s == "Idle" {
		return Idle, nil
	}
	r, err := ParseResource(s)
	if err != nil {
		return Idle, fmt.Errorf("invalid worker action: %w", err)
	}
	return Gather(r), nil
}

// Worker is an identity-less unit owned by a player
type Worker struct {
	Action WorkerAction
}

// NewWorker returns a worker performing the given action
func NewWorker(action WorkerAction) Worker {
	return Worker{Action: action}
}

// WorkerCounts is a histogram of worker actions
type WorkerCounts struct {
	Idle      int
	Gathering [ResourceCount]int
}

// CountWorkers builds the histogram for a roster
func CountWorkers(workers []Worker) WorkerCounts {
	var c WorkerCounts
	for _, w := range workers {
		if r, ok := w.Action.Gathering(); ok {
			c.Gathering[r]++
		} else {
			c.Idle++
		}
	}
	return c
}

// GatheringOf returns how many workers gather r
func (c WorkerCounts) GatheringOf(r Resource) int {
	return c.Gathering[r]
}

// Total returns the number of workers counted
func (c WorkerCounts) Total() int {
	total := c.Idle
	for _, n := range c.Gathering {
		total += n
	}
	return total
}
