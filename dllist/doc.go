// Package dllist implements a cyclic doubly linked list with a permanent
// sentinel header node and a bidirectional, mutating cursor.
//
// 🚀 What is inside?
//
//	  HEAD ⇄ n1 ⇄ n2 ⇄ … ⇄ nk ⇄ HEAD
//
//	Every list owns exactly one sentinel node (HEAD). The list is empty iff
//	HEAD links to itself, so boundary handling never needs nil checks:
//	  • O(1) insert/remove at both ends through splice primitives on Node
//	  • O(steps) cyclic rotation, O(n) predicate removal in a single pass
//	  • stable, left-biased merge of two sorted lists that relocates nodes
//	  • a Cursor that walks both directions and edits in place (Set/Remove/Add)
//	  • Go 1.23 range-over-func iterators: All, Backward, Nodes
//
// ✨ Contracts:
//   - Node.Unlink is the only removal primitive; every list operation is a
//     thin orchestration over Unlink/LinkSuccessor/LinkPredecessor.
//   - Failed operations never mutate: all checks precede the first splice.
//   - Merge empties both operands; ownership of nodes moves to the result.
//   - Cursor index queries are permanently unsupported (ErrUnsupported);
//     no index bookkeeping is maintained.
//
// ⚙️ Usage:
//
//	l := dllist.FromSlice([]string{"Alice", "Bob", "Carol"})
//	l.InsertBack("Dave")
//	l.InsertFront("Zora")
//	fmt.Println(l) // [Zora, Alice, Bob, Carol, Dave]
//
//	merged := dllist.Merge(dllist.FromSlice([]int{1, 4}), dllist.FromSlice([]int{2, 3}))
//	fmt.Println(merged) // [1, 2, 3, 4]
//
// Concurrency:
//
//	A List is not safe for concurrent use. A Cursor does not detect structural
//	changes made behind its back unless the list was built WithFailFast(), in
//	which case every cursor call reports ErrConcurrentModification after such
//	a change.
//
// Errors:
//
//	ErrEmptyList              - remove or rotate on an empty list.
//	ErrCursorExhausted        - Next past the back or Previous before the front.
//	ErrInvalidCursorState     - Set/Remove without a preceding Next/Previous.
//	ErrUnsupported            - NextIndex/PreviousIndex.
//	ErrNegativeSteps          - rotation by a negative number of steps.
//	ErrConcurrentModification - structural change outside an active cursor.
package dllist
