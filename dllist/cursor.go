// SPDX-License-Identifier: MIT
// File: cursor.go
// Role: Bidirectional mutating cursor over a List.
// State:
//   - current: the node most recently stepped onto; HEAD means "before the
//     front" when moving forward and "after the back" when moving backward.
//   - last: node returned by the latest Next/Previous, nil after Remove/Add.
// Determinism:
//   - Alternating Next and Previous returns the same element repeatedly.

package dllist

// Cursor walks a List in both directions and edits it in place.
// A Cursor belongs to one traversal session and is not safe for concurrent use.
type Cursor[K any] struct {
	list    *List[K]
	current *Node[K]
	last    *Node[K]
	mods    uint64 // list.mods as last seen by this cursor
}

// Cursor returns a cursor positioned before the first element.
func (l *List[K]) Cursor() *Cursor[K] {
	l.lazyInit()

	return &Cursor[K]{list: l, current: &l.head, mods: l.mods}
}

// HasNext reports whether Next would return an element.
func (c *Cursor[K]) HasNext() bool {
	return c.current.list == c.list && c.current.next != &c.list.head
}

// HasPrevious reports whether Previous would return an element.
func (c *Cursor[K]) HasPrevious() bool {
	return c.current.list == c.list && c.current != &c.list.head
}

// Next advances to the following node and returns its key.
// Returns ErrCursorExhausted at the back of the list.
func (c *Cursor[K]) Next() (K, error) {
	var zero K
	if err := c.check(); err != nil {
		return zero, err
	}
	if !c.HasNext() {
		return zero, ErrCursorExhausted
	}
	c.current = c.current.next
	c.last = c.current

	return c.current.Key, nil
}

// Previous returns the key of the current node and steps back to its
// predecessor. Returns ErrCursorExhausted at the front of the list.
func (c *Cursor[K]) Previous() (K, error) {
	var zero K
	if err := c.check(); err != nil {
		return zero, err
	}
	if !c.HasPrevious() {
		return zero, ErrCursorExhausted
	}
	c.last = c.current
	c.current = c.current.prev

	return c.last.Key, nil
}

// Set replaces the key of the element last returned by Next or Previous.
// Returns ErrInvalidCursorState if there is no such element.
func (c *Cursor[K]) Set(key K) error {
	if err := c.check(); err != nil {
		return err
	}
	if c.last == nil {
		return ErrInvalidCursorState
	}
	c.last.Key = key

	return nil
}

// Remove unlinks the element last returned by Next or Previous.
// It may be called once per Next/Previous; a second call returns
// ErrInvalidCursorState.
//
// After Next, the cursor rests on the removed node, so it first steps back to
// that node's predecessor: a following Next returns the removed node's old
// successor and a following Previous returns its old predecessor.
func (c *Cursor[K]) Remove() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.last == nil {
		return ErrInvalidCursorState
	}
	if c.current == c.last {
		c.current = c.current.prev
	}
	c.last.Unlink()
	c.last = nil
	c.mods = c.list.mods

	return nil
}

// Add inserts key directly after the cursor position without moving the
// cursor, so the following Next returns the new element. The last returned
// element is forgotten: Set and Remove fail until the next Next/Previous.
func (c *Cursor[K]) Add(key K) error {
	if err := c.check(); err != nil {
		return err
	}
	c.current.InsertSuccessor(key)
	c.last = nil
	c.mods = c.list.mods

	return nil
}

// NextIndex is not supported: lists keep no index bookkeeping.
// It always returns -1 and ErrUnsupported.
func (c *Cursor[K]) NextIndex() (int, error) { return -1, ErrUnsupported }

// PreviousIndex is not supported. It always returns -1 and ErrUnsupported.
func (c *Cursor[K]) PreviousIndex() (int, error) { return -1, ErrUnsupported }

// check reports ErrConcurrentModification when the cursor rests on a node
// that left the list, or, on fail-fast lists, when the list changed
// structurally since the cursor last looked.
func (c *Cursor[K]) check() error {
	if c.current.list != c.list {
		return ErrConcurrentModification
	}
	if c.list.opts.FailFast && c.mods != c.list.mods {
		return ErrConcurrentModification
	}

	return nil
}
