package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/analysis"
)

func ExampleMaxProbabilityPattern() {
	d := make(analysis.Distribution, 16)
	d[14] = 0.7
	d[1] = 0.3

	p, idx, _ := analysis.MaxProbabilityPattern(d)
	fmt.Println(idx, p)

	s, _ := analysis.Accuracy(p, analysis.Pattern{1, 1, 0, 0})
	fmt.Println(s.Original, s.Complement)
	// Output:
	// 14 1110
	// 75 25
}
