// SPDX-License-Identifier: MIT
// File: merge.go
// Role: Stable merge of two sorted lists by node relocation.

package dllist

import "cmp"

// Merge moves every node of first and second into a new list in
// non-decreasing key order and returns it. Both operands are left empty.
//
// The merge is stable and left-biased: on equal keys the node from first
// goes before the node from second. Both inputs must already be sorted;
// this is not validated, and unsorted input silently yields an unsorted
// result. A nil operand is treated as an empty list.
//
// The result takes its Options from first.
//
// Complexity: O(len(first) + len(second)) time, no key copies.
func Merge[K cmp.Ordered](first, second *List[K]) *List[K] {
	return MergeFunc(first, second, cmp.Compare[K])
}

// MergeFunc is Merge with a caller-supplied ordering: compare(a, b) < 0
// means a sorts before b.
func MergeFunc[K any](first, second *List[K], compare func(a, b K) int) *List[K] {
	if first == nil {
		first = New[K]()
	}
	if second == nil {
		second = New[K]()
	}
	first.lazyInit()
	second.lazyInit()

	result := &List[K]{opts: first.opts}
	result.lazyInit()
	tail := &result.head // new nodes go in front of HEAD, i.e. at the back

	for !first.IsEmpty() && !second.IsEmpty() {
		src := second
		if compare(first.head.next.Key, second.head.next.Key) <= 0 {
			src = first
		}
		tail.LinkPredecessor(src.head.next.Unlink())
	}
	for _, rest := range [...]*List[K]{first, second} {
		for !rest.IsEmpty() {
			tail.LinkPredecessor(rest.head.next.Unlink())
		}
	}

	return result
}
