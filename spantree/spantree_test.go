package spantree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/spantree"
)

type carver func(*core.Maze, ...spantree.Option) error

var carvers = map[string]carver{
	"DepthFirst":   spantree.DepthFirst,
	"BreadthFirst": spantree.BreadthFirst,
	"RandomFirst":  spantree.RandomFirst,
	"Prim":         spantree.Prim,
	"Grow":         spantree.Grow,
}

func newMaze(t *testing.T, build func(int, int, ...core.GridOption) (*core.Grid, error), rows, cols int, opts ...core.GridOption) *core.Maze {
	t.Helper()
	g, err := build(rows, cols, opts...)
	require.NoError(t, err)
	m, err := core.NewMaze(g)
	require.NoError(t, err)
	return m
}

func TestGrow_NilMaze(t *testing.T) {
	assert.ErrorIs(t, spantree.Grow(nil), spantree.ErrNilMaze)
}

func TestCarversProduceSpanningTrees(t *testing.T) {
	builders := map[string]func(int, int, ...core.GridOption) (*core.Grid, error){
		"plane":    core.NewGrid,
		"cylinder": core.NewCylinderGrid,
		"torus":    core.NewTorusGrid,
		"moebius":  core.NewMoebiusGrid,
	}
	for cname, carve := range carvers {
		for bname, build := range builders {
			t.Run(cname+"/"+bname, func(t *testing.T) {
				m := newMaze(t, build, 5, 6)
				rng := rand.New(rand.NewSource(2022))
				require.NoError(t, carve(m, spantree.WithRand(rng)))
				assert.True(t, m.IsPerfect(), "v=%d e=%d k=%d", m.V(), m.E(), m.K())
			})
		}
	}
}

func TestCarversOnConn8(t *testing.T) {
	for cname, carve := range carvers {
		t.Run(cname, func(t *testing.T) {
			m := newMaze(t, core.NewGrid, 4, 4, core.WithConnectivity(core.Conn8))
			require.NoError(t, carve(m, spantree.WithRand(rand.New(rand.NewSource(3)))))
			assert.True(t, m.IsPerfect())
		})
	}
}

func TestGrowIsDeterministicPerSeed(t *testing.T) {
	carveOnce := func(seed int64) map[[2]core.Index]bool {
		m := newMaze(t, core.NewGrid, 6, 6)
		require.NoError(t, spantree.DepthFirst(m, spantree.WithRand(rand.New(rand.NewSource(seed)))))
		edges := map[[2]core.Index]bool{}
		for _, c := range m.Grid().Cells() {
			for _, p := range c.Passages() {
				edges[[2]core.Index{c.Index(), p.Index()}] = true
			}
		}
		return edges
	}
	assert.Equal(t, carveOnce(11), carveOnce(11))
	assert.NotEqual(t, carveOnce(11), carveOnce(12), "different seeds should carve different trees")
}

func TestWithRootAnchorsTheTree(t *testing.T) {
	m := newMaze(t, core.NewGrid, 4, 4)
	root := m.Grid().Cell(core.Index{Row: 0, Col: 0})
	require.NoError(t, spantree.BreadthFirst(m,
		spantree.WithRoot(root),
		spantree.WithRand(rand.New(rand.NewSource(8)))))
	assert.True(t, m.IsPerfect())
	assert.NotEmpty(t, root.Passages())
}

func TestWithBinaryBoundsFanOut(t *testing.T) {
	m := newMaze(t, core.NewCylinderGrid, 5, 8)
	root := m.Grid().Cell(core.Index{Row: 2, Col: 3})
	require.NoError(t, spantree.DepthFirst(m,
		spantree.WithRoot(root),
		spantree.WithBinary(),
		spantree.WithRand(rand.New(rand.NewSource(17)))))

	assert.LessOrEqual(t, len(root.Passages()), 2, "root degree")
	for _, c := range m.Grid().Cells() {
		assert.LessOrEqual(t, len(c.Passages()), 3, "cell %v degree", c.Index())
	}
	// The bound can only remove edges, never add cycles.
	assert.Equal(t, 0, m.Arcs())
	assert.Equal(t, 0, m.EulerChar(), "binary growth still carves a forest of trees")
}

func TestWithPriorityDrivesPrim(t *testing.T) {
	// Score adoption by column so Prim sweeps west to east from the root
	// column outward; the result is still a spanning tree.
	m := newMaze(t, core.NewGrid, 4, 6)
	byColumn := func(_, cell *core.Cell) float64 { return float64(cell.Index().Col) }
	require.NoError(t, spantree.Prim(m,
		spantree.WithPriority(byColumn),
		spantree.WithRand(rand.New(rand.NewSource(4)))))
	assert.True(t, m.IsPerfect())
}

func TestWithPriorityNeverScoresTheRoot(t *testing.T) {
	// The root enters the frontier at a fixed priority; the priority
	// function scores adoptions only, so its parent is always a cell.
	m := newMaze(t, core.NewGrid, 3, 3)
	sawNil := false
	score := func(parent, _ *core.Cell) float64 {
		if parent == nil {
			sawNil = true
		}
		return 1
	}
	require.NoError(t, spantree.Prim(m,
		spantree.WithPriority(score),
		spantree.WithRand(rand.New(rand.NewSource(21)))))
	assert.False(t, sawNil)
	assert.True(t, m.IsPerfect())
}

func TestWithoutShuffleIsReproducibleAcrossSeeds(t *testing.T) {
	carveOnce := func(seed int64) int {
		m := newMaze(t, core.NewGrid, 5, 5)
		root := m.Grid().Cell(core.Index{Row: 0, Col: 0})
		require.NoError(t, spantree.DepthFirst(m,
			spantree.WithRoot(root),
			spantree.WithoutShuffle(),
			spantree.WithRand(rand.New(rand.NewSource(seed)))))
		require.True(t, m.IsPerfect())
		return len(root.Passages())
	}
	// Stack plus fixed fan-out order leaves nothing random.
	assert.Equal(t, carveOnce(1), carveOnce(999))
}
