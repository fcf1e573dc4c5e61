// Package worklist provides the FIFO queue shared by the bfs and cc traversals.
//
// The queue is an append-only slice with a moving head: popped slots are not
// reclaimed until Reset. Both traversals enqueue every node at most once per
// run, so the backing array never grows past the node count of the graph.
package worklist

// Queue is a growable FIFO of node ids.
// The zero value is ready to use.
type Queue struct {
	items []int32
	head  int
	peak  int // largest number of pending items seen since New/Reset
}

// New returns a queue whose backing array is preallocated for capHint items.
// A non-positive hint yields an empty, lazily grown queue.
func New(capHint int) *Queue {
	if capHint < 0 {
		capHint = 0
	}
	return &Queue{items: make([]int32, 0, capHint)}
}

// Push appends id to the tail.
func (q *Queue) Push(id int32) {
	q.items = append(q.items, id)
	if pending := len(q.items) - q.head; pending > q.peak {
		q.peak = pending
	}
}

// Pop removes and returns the head item; ok is false when the queue is empty.
func (q *Queue) Pop() (id int32, ok bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	id = q.items[q.head]
	q.head++
	return id, true
}

// Len reports the number of pending items.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Pushed reports how many items were pushed since New or the last Reset.
func (q *Queue) Pushed() int { return len(q.items) }

// Peak reports the high-water mark of pending items since New or the last Reset.
func (q *Queue) Peak() int { return q.peak }

// Reset empties the queue and keeps the backing array for reuse.
func (q *Queue) Reset() {
	q.items = q.items[:0]
	q.head = 0
	q.peak = 0
}
