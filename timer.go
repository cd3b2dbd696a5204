package arbor

import (
	"container/heap"
	"time"
)

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

// timerQueue orders deferred callbacks by deadline, and by post order for
// equal deadlines.
type timerQueue struct {
	items []*timer
	seq   uint64
}

func (q *timerQueue) Len() int { return len(q.items) }

func (q *timerQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.at.Equal(b.at) {
		return a.seq < b.seq
	}
	return a.at.Before(b.at)
}

func (q *timerQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *timerQueue) Push(x any) { q.items = append(q.items, x.(*timer)) }

func (q *timerQueue) Pop() any {
	n := len(q.items)
	t := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return t
}

func (q *timerQueue) post(at time.Time, fn func()) {
	q.seq++
	heap.Push(q, &timer{at: at, seq: q.seq, fn: fn})
}

// due removes and returns every callback whose deadline is not after now,
// in run order.
func (q *timerQueue) due(now time.Time) []func() {
	var fns []func()
	for len(q.items) > 0 && !q.items[0].at.After(now) {
		fns = append(fns, heap.Pop(q).(*timer).fn)
	}
	return fns
}

// next returns the earliest deadline.
func (q *timerQueue) next() (time.Time, bool) {
	if len(q.items) == 0 {
		return time.Time{}, false
	}
	return q.items[0].at, true
}
