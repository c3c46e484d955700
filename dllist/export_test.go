package dllist

import "fmt"

// CheckLinks walks l in both directions and reports the first violation of
// the cyclic linkage, ownership, or length bookkeeping.
func CheckLinks[K any](l *List[K]) error {
	l.lazyInit()
	head := &l.head
	if head.list != l {
		return fmt.Errorf("sentinel owned by %p, want %p", head.list, l)
	}
	forward := 0
	for curr := head; ; curr = curr.next {
		if curr.next == nil || curr.prev == nil {
			return fmt.Errorf("node %v has a nil link", curr)
		}
		if curr.next.prev != curr || curr.prev.next != curr {
			return fmt.Errorf("node %v breaks next.prev/prev.next symmetry", curr)
		}
		if curr.list != l {
			return fmt.Errorf("node %v owned by %p, want %p", curr, curr.list, l)
		}
		if curr.next == head {
			break
		}
		forward++
		if forward > l.len {
			return fmt.Errorf("forward walk exceeds Len()=%d", l.len)
		}
	}
	backward := 0
	for curr := head.prev; curr != head; curr = curr.prev {
		backward++
		if backward > l.len {
			return fmt.Errorf("backward walk exceeds Len()=%d", l.len)
		}
	}
	if forward != l.len || backward != l.len {
		return fmt.Errorf("walked %d forward, %d backward, Len()=%d", forward, backward, l.len)
	}

	return nil
}

// Mods exposes the structural modification counter.
func Mods[K any](l *List[K]) uint64 { return l.mods }
