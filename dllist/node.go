// SPDX-License-Identifier: MIT
// File: node.go
// Role: Node type and the O(1) splice primitives every list operation is built from.
// Invariants:
//   - For every linked node n: n.next.prev == n && n.prev.next == n (through HEAD too).
//   - n.list is the owning list while linked, nil once detached.
//   - Every splice updates the owner's length and modification counter.

package dllist

import "fmt"

// Node is one element of a List. Key is the payload and may be changed freely;
// the links are managed exclusively through the splice methods below.
type Node[K any] struct {
	// Key is the value stored in this node.
	Key K

	next, prev *Node[K]
	list       *List[K]
}

// Next returns the successor of n, or nil if n is the last node or detached.
func (n *Node[K]) Next() *Node[K] {
	if n.list == nil || n.next == &n.list.head {
		return nil
	}

	return n.next
}

// Prev returns the predecessor of n, or nil if n is the first node or detached.
func (n *Node[K]) Prev() *Node[K] {
	if n.list == nil || n.prev == &n.list.head {
		return nil
	}

	return n.prev
}

// Linked reports whether n currently belongs to a list.
func (n *Node[K]) Linked() bool { return n.list != nil }

// String renders the node as {key}.
func (n *Node[K]) String() string { return fmt.Sprintf("{%v}", n.Key) }

// Unlink removes n from its list by joining its neighbours to each other and
// returns n. The detached node keeps its Key; its links are cleared.
//
// Unlinking a detached node or a sentinel is a no-op.
//
// Complexity: O(1).
func (n *Node[K]) Unlink() *Node[K] {
	l := n.list
	if l == nil || n == &l.head {
		return n
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.list = nil, nil, nil
	l.spliced(-1)

	return n
}

// LinkSuccessor splices the detached node other in directly after n and
// returns other.
//
// The caller guarantees other is not linked into any list; this is not
// checked, and violating it corrupts both lists.
//
// Complexity: O(1).
func (n *Node[K]) LinkSuccessor(other *Node[K]) *Node[K] {
	other.prev = n
	other.next = n.next
	n.next.prev = other
	n.next = other
	other.list = n.list
	n.list.spliced(+1)

	return other
}

// LinkPredecessor splices the detached node other in directly before n and
// returns other. Same precondition as LinkSuccessor.
//
// Complexity: O(1).
func (n *Node[K]) LinkPredecessor(other *Node[K]) *Node[K] {
	other.next = n
	other.prev = n.prev
	n.prev.next = other
	n.prev = other
	other.list = n.list
	n.list.spliced(+1)

	return other
}

// InsertSuccessor creates a node holding key right after n and returns it.
func (n *Node[K]) InsertSuccessor(key K) *Node[K] {
	return n.LinkSuccessor(&Node[K]{Key: key})
}

// InsertPredecessor creates a node holding key right before n and returns it.
func (n *Node[K]) InsertPredecessor(key K) *Node[K] {
	return n.LinkPredecessor(&Node[K]{Key: key})
}
