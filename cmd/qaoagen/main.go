// Command qaoagen generates QAOA cost-operator instances and analyzes the
// measurement distributions they produce.
//
//	qaoagen ring --n 6
//	qaoagen regular --k 3 --nodes 10 --weighted --seed 7 --format yaml
//	qaoagen random --qubits 5 --pair-density 0.3
//	qaoagen clusters --config clusters.yaml
//	qaoagen batch --count 100 --workers 8 --family regular --size 12 --out-dir fixtures/
//	qaoagen evaluate --model ring.txt --beta 4 > dist.txt
//	qaoagen analyze --dist dist.txt --labels 0101
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
