// SPDX-License-Identifier: MIT
package operator_test

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/operator"
)

func ExampleFromHyperparameters() {
	m, err := operator.FromHyperparameters(3,
		[]int{1}, []float64{0.3},
		[][2]int{{0, 1}, {1, 2}}, []float64{0.4, 0.6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// # qubits=3
	// 0.3, 1
	// 0.4, 0 1
	// 0.6, 1 2
}

func ExampleModel_Spectrum() {
	m, _ := operator.FromHyperparameters(2, nil, nil, [][2]int{{0, 1}}, []float64{1})
	spec, _ := m.Spectrum()
	fmt.Println(spec)
	// Output: [1 -1 -1 1]
}
