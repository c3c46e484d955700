// Package search collects classic array search routines that trade bounds
// checks, comparisons and correctness against each other.
//
// Unsorted input (first matching index or NotFound):
//   - Linear   — one bounds check and one comparison per element.
//   - Sentinel — plants x in the last slot so the loop needs no bounds check.
//   - Unrolled — two comparisons per bounds check.
//
// Sorted input:
//   - Binary        — leftmost insertion point, len(a) when x exceeds every element.
//   - BinaryChecked — Binary after verifying the input is sorted.
//   - BinaryEarlyExit — the popular "return on first hit" variant; kept as a
//     counterexample, it can return a wrong position for absent keys.
//
// All functions are pure except Sentinel, which writes to a[len(a)-1] during
// the scan and restores it before returning.
package search
