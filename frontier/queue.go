package frontier

import "github.com/emirpasic/gods/queues/arrayqueue"

// Queue is the FIFO container; it turns the search engine into
// breadth-first growth.
type Queue struct {
	q *arrayqueue.Queue
}

// NewQueue builds an empty FIFO container.
func NewQueue() *Queue {
	return &Queue{q: arrayqueue.New()}
}

// Enter appends an entry; the priority is ignored.
func (q *Queue) Enter(e Entry, _ float64) {
	q.q.Enqueue(e)
}

// Serve removes and returns the oldest entry.
func (q *Queue) Serve() (Entry, bool) {
	v, ok := q.q.Dequeue()
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Len returns the number of pending entries.
func (q *Queue) Len() int { return q.q.Size() }
