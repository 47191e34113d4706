package frontier

import (
	"math"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Heap is the min-priority container; it turns the search engine into
// Prim-style growth. Equal priorities serve in insertion order, so a
// deterministic priority function yields a deterministic carve.
type Heap struct {
	rng    *rand.Rand
	pq     *priorityqueue.Queue
	seq    uint64
	lo, hi float64
}

type heapItem struct {
	entry    Entry
	priority float64
	seq      uint64
}

func byPriorityThenSeq(a, b interface{}) int {
	x, y := a.(heapItem), b.(heapItem)
	switch {
	case x.priority < y.priority:
		return -1
	case x.priority > y.priority:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}

// HeapOption configures a Heap.
type HeapOption func(*Heap)

// WithInterval sets the half-open interval [lo, hi) that priorities are
// drawn from when an entry enters with NoPriority. Ignored unless
// lo < hi.
func WithInterval(lo, hi float64) HeapOption {
	return func(h *Heap) {
		if lo < hi {
			h.lo, h.hi = lo, hi
		}
	}
}

// NewHeap builds a min-priority container. A nil rng falls back to a
// time-seeded source; it is used only for NoPriority draws.
func NewHeap(rng *rand.Rand, opts ...HeapOption) *Heap {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h := &Heap{
		rng: rng,
		pq:  priorityqueue.NewWith(byPriorityThenSeq),
		lo:  1,
		hi:  2,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enter adds an entry with the given priority. NoPriority draws a
// uniform priority from the configured interval.
func (h *Heap) Enter(e Entry, priority float64) {
	if math.IsNaN(priority) {
		priority = h.lo + h.rng.Float64()*(h.hi-h.lo)
	}
	h.pq.Enqueue(heapItem{entry: e, priority: priority, seq: h.seq})
	h.seq++
}

// Serve removes and returns the least-priority entry.
func (h *Heap) Serve() (Entry, bool) {
	v, ok := h.pq.Dequeue()
	if !ok {
		return Entry{}, false
	}
	return v.(heapItem).entry, true
}

// Len returns the number of pending entries.
func (h *Heap) Len() int { return h.pq.Size() }
