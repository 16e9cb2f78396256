package nntree_test

import (
	"fmt"
	"log"

	"github.com/TrevorS/nntree"
)

func ExampleTree_Query() {
	points := [][]float64{
		{0.01, 0.005}, {0.03, -0.005}, {0.08, 0.01}, {0.1, -0.01},
		{10.02, 9.95}, {9.94, 10.07}, {10.08, 10.01}, {9.97, 9.92},
	}

	cfg := nntree.DefaultConfig()
	cfg.LeafSize = 2
	tree, err := nntree.New(points, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ids, dists, err := tree.Query([]float64{0, 0}, 2)
	if err != nil {
		log.Fatal(err)
	}
	for i, id := range ids {
		fmt.Printf("%d %.4f\n", id, dists[i])
	}
	// Output:
	// 0 0.0112
	// 1 0.0304
}

func ExampleNew_vantagePoint() {
	points := [][]float64{{1, 1}, {2, 2}, {3, 3}, {8, 8}, {9, 9}}

	cfg := nntree.DefaultConfig()
	cfg.Strategy = nntree.StrategyVantagePoint
	cfg.Seed = 7
	tree, err := nntree.New(points, cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tree.Seed(), tree.Len())
	// Output:
	// 7 5
}
