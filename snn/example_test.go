package snn_test

import (
	"fmt"

	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/katalvlaran/snngraph/snn"
)

// ExampleBuildNumber weights each pair by its shared closed neighbors.
func ExampleBuildNumber() {
	tbl, _ := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
	el, _ := snn.BuildNumber(tbl, snn.WithWorkers(1))
	for p := 0; p < el.Len(); p++ {
		u, v, w := el.Edge(p)
		fmt.Printf("%d-%d %.0f\n", u, v, w)
	}
	// Output:
	// 0-1 3
	// 0-2 3
	// 0-3 2
	// 1-2 3
	// 1-3 2
	// 2-3 2
}

// ExampleBuildRank shows the rank weight k - s*/2 for k = 2.
func ExampleBuildRank() {
	tbl, _ := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
	el, _ := snn.BuildRank(tbl)
	w01, _ := el.Lookup(0, 1)
	w12, _ := el.Lookup(1, 2)
	fmt.Println(w01, w12)
	// Output: 1.5 1
}

func ExampleParseScheme() {
	s, err := snn.ParseScheme("NUMBER")
	fmt.Println(s, err)
	// Output: number <nil>
}
