package scenario

import "container/heap"

// entry is a command waiting in the schedule
type entry struct {
	cmd      Command
	sequence int64 // insertion order for stable sorting
}

// commandHeap implements heap.Interface for a min-heap of entries
type commandHeap []entry

func (h commandHeap) Len() int { return len(h) }

func (h commandHeap) Less(i, j int) bool {
	if h[i].cmd.At != h[j].cmd.At {
		return h[i].cmd.At < h[j].cmd.At
	}
	return h[i].sequence < h[j].sequence
}

func (h commandHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *commandHeap) Push(x any) {
	*h = append(*h, x.(entry))
}

func (h *commandHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Schedule is a priority queue of commands ordered by (At, insertion order).
// Commands sharing a tick come out in the order they were pushed.
type Schedule struct {
	h   commandHeap
	seq int64
}

// NewSchedule creates a schedule holding cmds
func NewSchedule(cmds ...Command) *Schedule {
	s := &Schedule{h: make(commandHeap, 0, len(cmds))}
	heap.Init(&s.h)
	for _, c := range cmds {
		s.Push(c)
	}
	return s
}

// Push adds a command
func (s *Schedule) Push(c Command) {
	s.seq++
	heap.Push(&s.h, entry{cmd: c, sequence: s.seq})
}

// Peek returns the earliest command without removing it
func (s *Schedule) Peek() (Command, bool) {
	if len(s.h) == 0 {
		return Command{}, false
	}
	return s.h[0].cmd, true
}

// Due removes and returns every command scheduled at or before tick
func (s *Schedule) Due(tick uint64) []Command {
	var due []Command
	for len(s.h) > 0 && s.h[0].cmd.At <= tick {
		due = append(due, heap.Pop(&s.h).(entry).cmd)
	}
	return due
}

// Empty returns true if no commands remain
func (s *Schedule) Empty() bool {
	return len(s.h) == 0
}

// Len returns the number of pending commands
func (s *Schedule) Len() int {
	return len(s.h)
}
