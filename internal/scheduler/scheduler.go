// Package scheduler provides the deferred-callback primitive every animated
// component is driven by.
//
// Time is virtual: the program advances the clock once per frame with the
// measured frame delta, and every callback whose deadline has been reached
// fires synchronously inside Advance, in deadline order. Because nothing runs
// on its own goroutine, callbacks may freely mutate the component that
// scheduled them.
package scheduler

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback. The zero value never refers to a
// live timer.
type TimerID uint64

// Clock is the read side of a scheduler shared with components that only
// need the current virtual time.
type Clock interface {
	Now() time.Duration
}

// Scheduler owns the virtual clock and the set of pending callbacks.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   timerQueue
	pending map[TimerID]*timer
}

type timer struct {
	id       TimerID
	deadline time.Duration
	seq      uint64
	group    *Group
	fn       func()
	index    int
}

// New returns an empty scheduler positioned at virtual time zero.
func New() *Scheduler {
	return &Scheduler{
		pending: make(map[TimerID]*timer),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// After schedules fn to run once the clock has advanced by d. Negative
// delays are treated as zero, which fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.schedule(d, fn, nil)
}

func (s *Scheduler) schedule(d time.Duration, fn func(), g *Group) TimerID {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{
		id:       TimerID(s.seq),
		deadline: s.now + d,
		seq:      s.seq,
		group:    g,
		fn:       fn,
	}
	heap.Push(&s.queue, t)
	s.pending[t.id] = t
	if g != nil {
		g.ids[t.id] = struct{}{}
	}
	return t.id
}

// Cancel removes a pending callback. It reports whether the timer was still
// pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.pending[id]
	if !ok {
		return false
	}
	s.remove(t)
	heap.Remove(&s.queue, t.index)
	return true
}

// CancelAll drops every pending callback and returns how many were dropped.
func (s *Scheduler) CancelAll() int {
	n := len(s.pending)
	for _, t := range s.pending {
		if t.group != nil {
			delete(t.group.ids, t.id)
		}
	}
	s.pending = make(map[TimerID]*timer)
	s.queue = s.queue[:0]
	return n
}

// Advance moves the clock forward by dt and fires every callback that became
// due, including callbacks scheduled by other callbacks during this call.
// It returns the number of callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0
	for len(s.queue) > 0 && s.queue[0].deadline <= target {
		t := heap.Pop(&s.queue).(*timer)
		s.remove(t)
		if t.deadline > s.now {
			s.now = t.deadline
		}
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

func (s *Scheduler) remove(t *timer) {
	delete(s.pending, t.id)
	if t.group != nil {
		delete(t.group.ids, t.id)
	}
}

// Group scopes a set of timers to one mounted component so that tearing the
// component down is a single CancelAll call.
type Group struct {
	s   *Scheduler
	ids map[TimerID]struct{}
}

// Group creates a new, empty timer group bound to the scheduler.
func (s *Scheduler) Group() *Group {
	return &Group{s: s, ids: make(map[TimerID]struct{})}
}

// Now returns the scheduler's current virtual time.
func (g *Group) Now() time.Duration {
	return g.s.now
}

// After schedules fn within the group.
func (g *Group) After(d time.Duration, fn func()) TimerID {
	return g.s.schedule(d, fn, g)
}

// Cancel cancels a timer owned by this group.
func (g *Group) Cancel(id TimerID) bool {
	if _, ok := g.ids[id]; !ok {
		return false
	}
	return g.s.Cancel(id)
}

// CancelAll cancels every pending timer in the group and returns the count.
func (g *Group) CancelAll() int {
	n := 0
	for id := range g.ids {
		if g.s.Cancel(id) {
			n++
		}
	}
	return n
}

// Pending returns the number of live timers in the group.
func (g *Group) Pending() int {
	return len(g.ids)
}

// Timers is the scheduling surface components depend on. Both *Scheduler
// and *Group satisfy it.
type Timers interface {
	Clock
	After(d time.Duration, fn func()) TimerID
	Cancel(id TimerID) bool
}

var (
	_ Timers = (*Scheduler)(nil)
	_ Timers = (*Group)(nil)
)

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline == q[j].deadline {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline < q[j].deadline
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
