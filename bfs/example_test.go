package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/snngraph/bfs"
	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/katalvlaran/snngraph/snn"
)

// ExampleComponents drops weak SNN links and counts what remains connected.
func ExampleComponents() {
	tbl, _ := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
	el, _ := snn.BuildNumber(tbl)

	all, _ := bfs.Components(el)
	strong, _ := bfs.Components(el, bfs.WithMinWeight(3))
	fmt.Println(all.Count, strong.Count, strong.Label)
	// Output: 1 2 [0 0 0 1]
}

// ExampleWalk lists the points within one hop of point 3.
func ExampleWalk() {
	tbl, _ := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
	el, _ := snn.BuildNumber(tbl)
	g, _ := el.Graph()

	res, _ := bfs.Walk(g, "3", bfs.WithMaxDepth(1))
	fmt.Println(res.Order)
	// Output: [3 0 1 2]
}
