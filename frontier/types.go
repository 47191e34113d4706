package frontier

import (
	"math"

	"github.com/katalvlaran/mazegrid/core"
)

// NoPriority marks an Enter call that supplies no explicit priority.
// Heap replaces it with a uniform draw from its priority interval; the
// other containers ignore priorities entirely.
var NoPriority = math.NaN()

// Entry is one pending item of a search: a candidate cell together with
// the already-adopted cell proposing to link it. Parent is nil only for
// the root entry.
type Entry struct {
	Parent *core.Cell
	Cell   *core.Cell
}

// Frontier is the container of pending entries. The serving discipline
// alone decides which search algorithm the engine performs.
type Frontier interface {
	// Enter adds an entry. Priority is meaningful only to priority-based
	// implementations; pass NoPriority to let them draw one.
	Enter(e Entry, priority float64)

	// Serve removes and returns the next entry per the container's
	// discipline; ok is false when the container is empty.
	Serve() (Entry, bool)

	// Len returns the number of pending entries.
	Len() int
}
