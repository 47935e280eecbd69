package scene

import (
	"testing"

	"github.com/ChicagoDave/towerforge/pkg/params"
	"github.com/ChicagoDave/towerforge/pkg/tower"
)

// paramsForFloors builds a parameter set scaled to the given stack size.
func paramsForFloors(n int) params.TowerParameters {
	p := params.Defaults()
	p.FloorCount = n
	p.TwistMax = 240
	p.ProfilePoints = []float64{1, 0.7, 0.55, 0.8, 1.05}
	return p
}

func BenchmarkBuild64(b *testing.B)  { benchmarkBuild(b, 64) }
func BenchmarkBuild256(b *testing.B) { benchmarkBuild(b, 256) }

func benchmarkBuild(b *testing.B, floors int) {
	p := paramsForFloors(floors)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tower.Build(p)
	}
}

func BenchmarkAssemble64(b *testing.B)  { benchmarkAssemble(b, 64) }
func BenchmarkAssemble256(b *testing.B) { benchmarkAssemble(b, 256) }

func benchmarkAssemble(b *testing.B, floors int) {
	p := paramsForFloors(floors)
	tw := tower.Build(p)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Assemble(tw, p)
	}
}
