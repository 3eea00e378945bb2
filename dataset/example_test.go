package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/dataset"
)

func ExamplePairwiseDistances() {
	dm, err := dataset.PairwiseDistances([][]float64{{0, 0}, {3, 4}, {0, 4}}, dataset.Manhattan)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dm.Rows())
	// Output: [[0 7 4] [7 0 3] [4 3 0]]
}
