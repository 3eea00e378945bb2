// Package analysis interprets measurement distributions produced by a cost
// evaluator and scores them against known labels.
//
// Bit ordering follows the operator package: basis index i over n qubits
// maps to the pattern whose position p holds bit (i >> (n-1-p)) & 1, so
// index 14 over 4 qubits is 1110.
//
// A pair-only cost operator is invariant under flipping every bit, so its
// optimum always comes as a degenerate pair {x, ¬x}. MaxProbabilityPattern
// reports one member (the lower index on ties); DegeneratePair and
// Score.Complement expose the other.
package analysis
