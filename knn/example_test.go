package knn_test

import (
	"fmt"

	"github.com/katalvlaran/snngraph/knn"
	"github.com/katalvlaran/snngraph/neighbors"
)

func ExampleBuild() {
	t, _ := neighbors.New([][]int{{1}, {0}, {1}})
	el, _ := knn.Build(t, knn.WithMutualWeight())
	for p := 0; p < el.Len(); p++ {
		u, v, w := el.Edge(p)
		fmt.Println(u, v, w)
	}
	// Output:
	// 0 1 2
	// 1 2 1
}
