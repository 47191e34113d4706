package huntkill_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/huntkill"
)

func newMaze(t *testing.T, build func(int, int, ...core.GridOption) (*core.Grid, error), rows, cols int, opts ...core.GridOption) *core.Maze {
	t.Helper()
	g, err := build(rows, cols, opts...)
	require.NoError(t, err)
	m, err := core.NewMaze(g)
	require.NoError(t, err)
	return m
}

func TestOn_NilMaze(t *testing.T) {
	assert.ErrorIs(t, huntkill.On(nil), huntkill.ErrNilMaze)
}

func TestOnCarvesPerfectMazes(t *testing.T) {
	strategies := []huntkill.Strategy{
		huntkill.HuntFrontier,
		huntkill.HuntRandomScan,
		huntkill.HuntOrderedScan,
	}
	builders := map[string]func(int, int, ...core.GridOption) (*core.Grid, error){
		"plane":   core.NewGrid,
		"torus":   core.NewTorusGrid,
		"moebius": core.NewMoebiusGrid,
	}
	for _, strat := range strategies {
		for bname, build := range builders {
			t.Run(strat.String()+"/"+bname, func(t *testing.T) {
				m := newMaze(t, build, 5, 6)
				require.NoError(t, huntkill.On(m,
					huntkill.WithStrategy(strat),
					huntkill.WithRand(rand.New(rand.NewSource(606)))))
				assert.True(t, m.IsPerfect(), "v=%d e=%d k=%d", m.V(), m.E(), m.K())
			})
		}
	}
}

func TestOnConn8(t *testing.T) {
	m := newMaze(t, core.NewGrid, 4, 4, core.WithConnectivity(core.Conn8))
	require.NoError(t, huntkill.On(m, huntkill.WithRand(rand.New(rand.NewSource(5)))))
	assert.True(t, m.IsPerfect())
}

func TestWithStart(t *testing.T) {
	m := newMaze(t, core.NewGrid, 3, 3)
	start := m.Grid().Cell(core.Index{Row: 0, Col: 0})
	require.NoError(t, huntkill.On(m,
		huntkill.WithStart(start),
		huntkill.WithRand(rand.New(rand.NewSource(3)))))
	assert.True(t, m.IsPerfect())
	assert.NotEmpty(t, start.Passages())
}

func TestWithOnPhaseAlternates(t *testing.T) {
	m := newMaze(t, core.NewGrid, 4, 4)
	var phases []huntkill.Phase
	adopted := 0
	hook := func(phase huntkill.Phase, scanned, added int) {
		phases = append(phases, phase)
		assert.GreaterOrEqual(t, scanned, added)
		adopted += added
	}
	require.NoError(t, huntkill.On(m,
		huntkill.WithRand(rand.New(rand.NewSource(41))),
		huntkill.WithOnPhase(hook)))

	require.NotEmpty(t, phases)
	assert.Equal(t, huntkill.PhaseKill, phases[0], "carving starts with a kill")
	for i := 1; i < len(phases); i++ {
		assert.NotEqual(t, phases[i-1], phases[i], "phases alternate")
	}
	assert.Equal(t, m.V()-1, adopted, "every cell but the start is adopted once")
}

func TestOnDisconnectedGrid(t *testing.T) {
	// Spreading the cells three columns apart leaves every cell without
	// neighbors: the hunt must come up empty.
	g, err := core.NewGrid(1, 2, core.WithTransform(func(x, y int) (int, int) {
		return 3 * x, y
	}))
	require.NoError(t, err)
	m, err := core.NewMaze(g)
	require.NoError(t, err)

	err = huntkill.On(m, huntkill.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, huntkill.ErrDisconnected)
	assert.Equal(t, 2, m.K(), "nothing could be carved")
}

func TestOnIsDeterministicPerSeed(t *testing.T) {
	carve := func(strat huntkill.Strategy) map[[2]core.Index]bool {
		m := newMaze(t, core.NewGrid, 5, 5)
		require.NoError(t, huntkill.On(m,
			huntkill.WithStrategy(strat),
			huntkill.WithRand(rand.New(rand.NewSource(88)))))
		edges := map[[2]core.Index]bool{}
		for _, c := range m.Grid().Cells() {
			for _, p := range c.Passages() {
				edges[[2]core.Index{c.Index(), p.Index()}] = true
			}
		}
		return edges
	}
	for _, strat := range []huntkill.Strategy{huntkill.HuntFrontier, huntkill.HuntRandomScan, huntkill.HuntOrderedScan} {
		assert.Equal(t, carve(strat), carve(strat), strat.String())
	}
}
