// Package schedule is the deferred-action queue of a run. Actions are keyed
// to an absolute simulation timestamp and carry the id of the entity they act
// on; an action whose target is no longer live is dropped when it comes due.
package schedule

import (
	"container/heap"
	"time"
)

// Liveness reports whether an entity id still refers to a live entity.
type Liveness interface {
	Live(id string) bool
}

// LivenessFunc adapts a function to Liveness.
type LivenessFunc func(id string) bool

// Live implements Liveness.
func (f LivenessFunc) Live(id string) bool { return f(id) }

type event struct {
	at     time.Duration
	seq    uint64
	target string
	fn     func()
}

type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(*event)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Queue is a min-heap of scheduled actions. Ties fire in scheduling order.
// It is owned by the simulation and is not safe for concurrent use.
type Queue struct {
	events   eventHeap
	seq      uint64
	liveness Liveness
}

// New creates a queue. A nil liveness treats every target as live.
func New(liveness Liveness) *Queue {
	return &Queue{liveness: liveness}
}

// Schedule queues fn to run once the clock reaches at. An empty targetID
// marks a run-level action that is never dropped.
func (q *Queue) Schedule(at time.Duration, targetID string, fn func()) {
	if fn == nil {
		return
	}
	q.seq++
	heap.Push(&q.events, &event{at: at, seq: q.seq, target: targetID, fn: fn})
}

// Drain runs every action due at or before now, including actions scheduled
// by other actions during the drain. It returns how many actions ran.
func (q *Queue) Drain(now time.Duration) int {
	ran := 0
	for len(q.events) > 0 && q.events[0].at <= now {
		e := heap.Pop(&q.events).(*event)
		if e.target != "" && q.liveness != nil && !q.liveness.Live(e.target) {
			continue
		}
		e.fn()
		ran++
	}
	return ran
}

// Len is the number of pending actions.
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear drops every pending action.
func (q *Queue) Clear() {
	q.events = nil
}
