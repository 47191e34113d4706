package huntkill

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/frontier"
)

type state struct {
	o         Options
	cur       *core.Cell
	unvisited mapset.Set[*core.Cell]
	order     []*core.Cell
	bank      *frontier.Unqueue
}

// On carves a spanning tree by alternating kill and hunt phases. On a
// disconnected grid it carves what it can reach and returns
// ErrDisconnected.
func On(m *core.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := m.Grid().Cells()
	cur := o.start
	if cur == nil {
		cur = cells[o.rng.Intn(len(cells))]
	}

	s := &state{
		o:         o,
		cur:       cur,
		unvisited: mapset.New[*core.Cell](),
		bank:      frontier.NewUnqueue(o.rng),
	}
	for _, c := range cells {
		if c != cur {
			s.unvisited.Put(c)
			s.order = append(s.order, c)
		}
	}

	for s.unvisited.Size() > 0 && s.cur != nil {
		s.kill()
		s.hunt()
	}
	if s.unvisited.Size() > 0 {
		return ErrDisconnected
	}
	return nil
}

// kill walks unvisited neighbors only, carving as it goes, until the
// walk has no unvisited neighbor left.
func (s *state) kill() {
	scanned, added := 0, 0
	for s.unvisited.Size() > 0 {
		var open []*core.Cell
		for _, nbr := range s.cur.Neighbors() {
			scanned++
			if s.unvisited.Has(nbr) {
				open = append(open, nbr)
			}
		}
		if len(open) == 0 {
			break // painted into a corner
		}

		i := s.o.rng.Intn(len(open))
		next := open[i]
		s.unvisited.Remove(next)
		s.cur.Link(next)
		added++

		if s.o.strategy == HuntFrontier {
			// Bank the unchosen candidates for the hunt.
			for j, nbr := range open {
				if j != i {
					s.bank.Enter(frontier.Entry{Parent: s.cur, Cell: nbr}, frontier.NoPriority)
				}
			}
		}
		s.cur = next
	}
	if s.o.onPhase != nil {
		s.o.onPhase(PhaseKill, scanned, added)
	}
}

// hunt finds an unvisited cell bordering the tree per the configured
// strategy, links it in, and moves the walk there. With nothing found,
// s.cur becomes nil and the carve stops.
func (s *state) hunt() {
	var scanned, added int
	switch s.o.strategy {
	case HuntFrontier:
		scanned, added = s.huntFrontier()
	case HuntRandomScan:
		scanned, added = s.huntScan(true)
	default:
		scanned, added = s.huntScan(false)
	}
	if s.o.onPhase != nil {
		s.o.onPhase(PhaseHunt, scanned, added)
	}
}

func (s *state) huntFrontier() (scanned, added int) {
	for s.bank.Len() > 0 {
		e, _ := s.bank.Serve()
		scanned++
		if s.unvisited.Has(e.Cell) {
			e.Parent.Link(e.Cell)
			s.unvisited.Remove(e.Cell)
			s.cur = e.Cell
			return scanned, 1
		}
	}
	s.cur = nil
	return scanned, 0
}

func (s *state) huntScan(shuffle bool) (scanned, added int) {
	candidates := make([]*core.Cell, 0, s.unvisited.Size())
	for _, c := range s.order {
		if s.unvisited.Has(c) {
			candidates = append(candidates, c)
		}
	}
	if shuffle {
		s.o.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	for _, cell := range candidates {
		for _, nbr := range cell.Neighbors() {
			scanned++
			if !s.unvisited.Has(nbr) {
				cell.Link(nbr)
				s.unvisited.Remove(cell)
				s.cur = cell
				return scanned, 1
			}
		}
	}
	s.cur = nil
	return scanned, 0
}
