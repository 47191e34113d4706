package frontier

import (
	"math/rand"
	"time"
)

// Unqueue is the random-out container: Serve removes a uniformly random
// pending entry. Insertion order carries no meaning.
type Unqueue struct {
	rng   *rand.Rand
	items []Entry
}

// NewUnqueue builds a random-out container. A nil rng falls back to a
// time-seeded source.
func NewUnqueue(rng *rand.Rand) *Unqueue {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Unqueue{rng: rng}
}

// Enter adds an entry; the priority is ignored.
func (u *Unqueue) Enter(e Entry, _ float64) {
	u.items = append(u.items, e)
}

// Serve removes and returns a uniformly random entry via swap-remove.
func (u *Unqueue) Serve() (Entry, bool) {
	n := len(u.items)
	if n == 0 {
		return Entry{}, false
	}
	i := u.rng.Intn(n)
	e := u.items[i]
	u.items[i] = u.items[n-1]
	u.items[n-1] = Entry{}
	u.items = u.items[:n-1]
	return e, true
}

// Len returns the number of pending entries.
func (u *Unqueue) Len() int { return len(u.items) }
