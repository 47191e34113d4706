package wilson_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/wilson"
)

// BenchmarkOn measures a full Wilson carve on an M×M plane. Each
// iteration rebuilds the grid; the carve mutates it.
func BenchmarkOn(b *testing.B) {
	const M = 20
	rng := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewGrid(M, M)
		m, _ := core.NewMaze(g)
		_ = wilson.On(m, wilson.WithRand(rng))
	}
}

// BenchmarkOn_Torus carves the same size with both seams identified;
// the wrap shortens walks noticeably.
func BenchmarkOn_Torus(b *testing.B) {
	const M = 20
	rng := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewTorusGrid(M, M)
		m, _ := core.NewMaze(g)
		_ = wilson.On(m, wilson.WithRand(rng))
	}
}
