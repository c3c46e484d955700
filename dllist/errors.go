// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors for list, rotation, and cursor operations.
// Policy:
//   - Every message is prefixed with "dllist: ".
//   - Callers match with errors.Is; wrapped returns keep the sentinel via %w.

package dllist

import "errors"

var (
	// ErrEmptyList is returned when removing from either end, or rotating by a
	// positive number of steps, on a list that holds no elements.
	ErrEmptyList = errors.New("dllist: list is empty")

	// ErrCursorExhausted is returned by Cursor.Next at the back of the list and
	// by Cursor.Previous at the front.
	ErrCursorExhausted = errors.New("dllist: cursor has no element in that direction")

	// ErrInvalidCursorState is returned by Cursor.Set and Cursor.Remove when no
	// element has been returned since the cursor was created or last mutated.
	ErrInvalidCursorState = errors.New("dllist: cursor has no last returned element")

	// ErrUnsupported is returned by Cursor.NextIndex and Cursor.PreviousIndex.
	ErrUnsupported = errors.New("dllist: operation not supported")

	// ErrNegativeSteps is returned by RotateLeft/RotateRight for steps < 0.
	ErrNegativeSteps = errors.New("dllist: rotation steps must be non-negative")

	// ErrConcurrentModification is returned by a cursor whose list changed
	// structurally outside of that cursor.
	ErrConcurrentModification = errors.New("dllist: list modified outside the cursor")
)
