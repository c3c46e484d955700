// SPDX-License-Identifier: MIT
// File: list.go
// Role: List construction, end operations, rotation, predicate removal,
//       membership and rendering.
// Policy:
//   - Every mutation is Unlink/LinkSuccessor/LinkPredecessor on HEAD or a data node.
//   - Argument and emptiness checks run before the first splice.

package dllist

import (
	"fmt"
	"strings"
)

// List is a cyclic doubly linked list with a sentinel header node.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use: its nodes point at the embedded sentinel.
type List[K any] struct {
	head Node[K] // sentinel: never removed, its Key is never read
	len  int
	mods uint64 // bumped on every structural splice
	opts Options
}

// New returns an empty list configured by opts.
//
// Complexity: O(len(opts)).
func New[K any](opts ...Option) *List[K] {
	l := &List[K]{opts: buildOptions(opts)}
	l.lazyInit()

	return l
}

// FromSlice returns a list holding keys in the given order.
//
// Complexity: O(len(keys)).
func FromSlice[K any](keys []K, opts ...Option) *List[K] {
	l := New[K](opts...)
	for _, key := range keys {
		l.head.InsertPredecessor(key)
	}

	return l
}

// lazyInit makes the zero value usable: HEAD links to itself.
func (l *List[K]) lazyInit() {
	if l.head.next == nil {
		l.head.next = &l.head
		l.head.prev = &l.head
		l.head.list = l
		if l.opts.Format == nil {
			l.opts.Format = defaultFormat
		}
	}
}

// spliced records a structural change of delta elements.
func (l *List[K]) spliced(delta int) {
	l.len += delta
	l.mods++
}

// Len returns the number of elements. Complexity: O(1).
func (l *List[K]) Len() int { return l.len }

// IsEmpty reports whether HEAD links to itself.
func (l *List[K]) IsEmpty() bool {
	l.lazyInit()

	return l.head.next == &l.head
}

// Front returns the first node, or nil if the list is empty.
func (l *List[K]) Front() *Node[K] {
	if l.IsEmpty() {
		return nil
	}

	return l.head.next
}

// Back returns the last node, or nil if the list is empty.
func (l *List[K]) Back() *Node[K] {
	if l.IsEmpty() {
		return nil
	}

	return l.head.prev
}

// InsertFront adds key at the front of the list and returns its node.
func (l *List[K]) InsertFront(key K) *Node[K] {
	l.lazyInit()

	return l.head.InsertSuccessor(key)
}

// InsertBack adds key at the back of the list and returns its node.
func (l *List[K]) InsertBack(key K) *Node[K] {
	l.lazyInit()

	return l.head.InsertPredecessor(key)
}

// RemoveFront unlinks and returns the first node.
// Returns ErrEmptyList if the list has no elements.
func (l *List[K]) RemoveFront() (*Node[K], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}

	return l.head.next.Unlink(), nil
}

// RemoveBack unlinks and returns the last node.
// Returns ErrEmptyList if the list has no elements.
func (l *List[K]) RemoveBack() (*Node[K], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}

	return l.head.prev.Unlink(), nil
}

// RotateLeft cyclically shifts the elements steps positions to the left:
// each step moves the front node to the back.
//
// Errors:
//   - ErrNegativeSteps if steps < 0.
//   - ErrEmptyList if steps > 0 and the list is empty.
//
// Rotating by a multiple of Len() leaves the order unchanged, so only
// steps mod Len() splices are performed. Complexity: O(min(steps, n)).
func (l *List[K]) RotateLeft(steps int) error {
	k, err := l.rotationSteps("RotateLeft", steps)
	if err != nil {
		return err
	}
	for i := 0; i < k; i++ {
		l.head.LinkPredecessor(l.head.next.Unlink())
	}

	return nil
}

// RotateRight cyclically shifts the elements steps positions to the right:
// each step moves the back node to the front. Errors as for RotateLeft.
func (l *List[K]) RotateRight(steps int) error {
	k, err := l.rotationSteps("RotateRight", steps)
	if err != nil {
		return err
	}
	for i := 0; i < k; i++ {
		l.head.LinkSuccessor(l.head.prev.Unlink())
	}

	return nil
}

// rotationSteps validates steps and reduces it modulo the list length.
func (l *List[K]) rotationSteps(op string, steps int) (int, error) {
	switch {
	case steps < 0:
		return 0, fmt.Errorf("%w: %s(%d)", ErrNegativeSteps, op, steps)
	case steps == 0:
		return 0, nil
	case l.IsEmpty():
		return 0, fmt.Errorf("%w: %s(%d)", ErrEmptyList, op, steps)
	}

	return steps % l.len, nil
}

// RemoveIf unlinks every node whose key satisfies pred, in one forward pass,
// and returns how many were removed. Survivors keep their relative order.
//
// Complexity: O(n) time, O(1) extra space.
func (l *List[K]) RemoveIf(pred func(key K) bool) int {
	l.lazyInit()
	removed := 0
	for curr := l.head.next; curr != &l.head; {
		next := curr.next // Unlink clears curr's links
		if pred(curr.Key) {
			curr.Unlink()
			removed++
		}
		curr = next
	}

	return removed
}

// ContainsFunc reports whether some key satisfies match.
// The scan is bounded by HEAD and never touches the sentinel's key.
func (l *List[K]) ContainsFunc(match func(key K) bool) bool {
	l.lazyInit()
	for curr := l.head.next; curr != &l.head; curr = curr.next {
		if match(curr.Key) {
			return true
		}
	}

	return false
}

// Contains reports whether l holds a key equal to v.
//
// Complexity: O(n).
func Contains[K comparable](l *List[K], v K) bool {
	return l.ContainsFunc(func(key K) bool { return key == v })
}

// String renders the keys front to back as "[k1, k2, ..., kn]"; an empty
// list renders as "[]".
func (l *List[K]) String() string {
	l.lazyInit()
	var sb strings.Builder
	sb.WriteByte('[')
	for curr := l.head.next; curr != &l.head; curr = curr.next {
		if curr != l.head.next {
			sb.WriteString(", ")
		}
		sb.WriteString(l.opts.Format(curr.Key))
	}
	sb.WriteByte(']')

	return sb.String()
}
