// Package pq is the min-heap shared by the priority-ordered searches.
//
// Entries with equal priority pop in insertion order, so a fixed grid and
// a fixed neighbor order always produce the same visitation trace. Stale
// entries are never removed: callers push duplicates on improvement and
// skip already-visited nodes on pop ("lazy decrease-key").
package pq

import "container/heap"

// Item is one queue entry. Node is a row-major grid index.
type Item struct {
	Node     int
	Priority float64
	seq      uint64
}

// items implements heap.Interface ordered by (Priority, seq).
type items []Item

func (q items) Len() int { return len(q) }

func (q items) Less(i, j int) bool {
	if q[i].Priority != q[j].Priority {
		return q[i].Priority < q[j].Priority
	}
	return q[i].seq < q[j].seq
}

func (q items) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *items) Push(x any) { *q = append(*q, x.(Item)) }

func (q *items) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Queue is a stable min-priority queue.
type Queue struct {
	items items
	next  uint64
}

// New returns an empty queue with room for capacity entries.
func New(capacity int) *Queue {
	return &Queue{items: make(items, 0, capacity)}
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return q.items.Len() }

// Push enqueues node with the given priority.
func (q *Queue) Push(node int, priority float64) {
	heap.Push(&q.items, Item{Node: node, Priority: priority, seq: q.next})
	q.next++
}

// Pop removes and returns the entry with the lowest priority.
// It panics on an empty queue.
func (q *Queue) Pop() Item {
	return heap.Pop(&q.items).(Item)
}
