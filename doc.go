// Package qaoakit builds the classical side of QAOA experiments: cost
// operators, the graphs and datasets they come from, and the analysis of the
// measurement distributions a circuit returns.
//
// 🚀 What is qaoakit?
//
//	A small, deterministic toolkit that brings together:
//		• Cost operators: weighted single- and two-qubit Z terms, energies, spectra
//		• Graph codec: coupling graph ⇄ operator, biases as node attributes
//		• Generators: ring of disagrees, random k-regular, random density
//		• Datasets: Gaussian clusters and pairwise distance matrices
//		• Analysis: most likely patterns, complements, accuracy, state preparation
//
// ✨ Why qaoakit?
//
//   - Reproducible – every random generator takes an explicit seed or *rand.Rand
//   - Checked – constructors validate and return wrapped sentinel errors
//   - Portable – text and YAML fixtures round-trip exactly
//
// Packages:
//
//	operator/   — Model, Single, Pair, Energy, Spectrum, text and YAML codecs
//	core/       — thread-safe weighted Graph with node biases
//	converters/ — ToGraph / FromGraph between core.Graph and operator.Model
//	builder/    — instance generators and functional options
//	dataset/    — Gaussian clusters, metrics, DistanceMatrix
//	analysis/   — Distribution, Pattern, Accuracy, ExactEvaluator
//	cmd/qaoagen — command-line front end
//
// Quick example:
//
//	m, _ := builder.RingOfDisagrees(4)
//	fmt.Print(m)
//	// # qubits=4
//	// 1, 0 1
//	// 1, 0 3
//	// 1, 1 2
//	// 1, 2 3
//
//	go get github.com/katalvlaran/qaoakit
package qaoakit
