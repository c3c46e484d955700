// Package shlemiel pairs algorithms that quietly redo work on every step
// ("Shlemiel the painter" walks back to the paint can for each stroke) with
// versions that carry their state forward instead.
//
// Every XxxShlemiel function returns exactly what its efficient sibling
// returns; only the cost differs:
//
//	Accumulate                  O(n²) → O(n)
//	LongestAscendingSubarray    O(n²) → O(n)
//	TwoSummingElements          O(n²) → O(n)       (sorted input)
//	EvaluatePolynomial          O(n²) → O(n)       (Linear and Horner)
//	ContainsAllNumbers          O(n²) → O(n log n) (Sorting) → O(n) (Linear)
//	RemoveShortStrings          O(n²) → O(n)
//	HasMajority                 O(n²) → O(n)       (HashMap, Linear)
//
// The benchmarks in bench_test.go show the gap growing with n.
// None of the functions modifies its input unless documented.
package shlemiel
