package snn_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/snngraph/builder"
	"github.com/katalvlaran/snngraph/snn"
)

func BenchmarkBuild(b *testing.B) {
	tbl, err := builder.Random(20000, 15, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	for _, s := range []snn.Scheme{snn.Rank, snn.Number} {
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("%s/workers=%d", s, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := snn.Build(tbl, s, snn.WithWorkers(w)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkBuildRank_Ring(b *testing.B) {
	tbl, err := builder.Ring(50000, 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := snn.BuildRank(tbl); err != nil {
			b.Fatal(err)
		}
	}
}
