// Package topics is a small collection of classroom data
// structures and algorithms, each one self-contained and tested.
//
// 🚀 What is inside?
//
//	dllist/   — cyclic doubly linked list with a sentinel header node,
//	            O(1) splices, rotation, predicate removal, stable merge
//	            and a bidirectional mutating cursor
//	search/   — linear, sentinel, unrolled and binary array searches
//	shlemiel/ — quadratic "Shlemiel the painter" algorithms next to their
//	            linear rewrites, with benchmarks showing the difference
//	examples/ — runnable scenarios for every package (go run ./examples)
//
// ✨ Why?
//
//   - Every package is independent: no shared types, no global state.
//   - Pure Go, standard library only at runtime.
//   - Errors are sentinel values matched with errors.Is; no panics on bad input.
//
// Quick ASCII picture of the list:
//
//	HEAD ⇄ Alice ⇄ Bob ⇄ Carol ⇄ HEAD
//
//	go get github.com/ikokkari/TopicsInDataStructures/dllist
package topics
