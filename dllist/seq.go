// File: seq.go
// Role: Range-over-func iterators and slice/iterator conversions.

package dllist

import "iter"

// Collect returns a list holding the values of seq in iteration order.
func Collect[K any](seq iter.Seq[K], opts ...Option) *List[K] {
	l := New[K](opts...)
	for key := range seq {
		l.head.InsertPredecessor(key)
	}

	return l
}

// All yields the keys front to back.
// The list must not be structurally modified while ranging; use Nodes or
// RemoveIf to delete during a pass.
func (l *List[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		l.lazyInit()
		for curr := l.head.next; curr != &l.head; curr = curr.next {
			if !yield(curr.Key) {
				return
			}
		}
	}
}

// Backward yields the keys back to front. Same restriction as All.
func (l *List[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		l.lazyInit()
		for curr := l.head.prev; curr != &l.head; curr = curr.prev {
			if !yield(curr.Key) {
				return
			}
		}
	}
}

// Nodes yields the nodes front to back. The loop body may unlink the
// yielded node or its successor: the walk resumes at the captured successor
// while it is still in the list, otherwise at the yielded node's current
// successor. It stops if both have left the list.
func (l *List[K]) Nodes() iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		l.lazyInit()
		for curr := l.head.next; curr != &l.head; {
			next := curr.next
			if !yield(curr) {
				return
			}
			switch {
			case next.list == l:
				curr = next
			case curr.list == l:
				curr = curr.next
			default:
				return
			}
		}
	}
}

// Slice returns the keys front to back in a new slice.
func (l *List[K]) Slice() []K {
	out := make([]K, 0, l.len)
	for key := range l.All() {
		out = append(out, key)
	}

	return out
}
