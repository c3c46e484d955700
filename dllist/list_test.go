package dllist_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikokkari/TopicsInDataStructures/dllist"
)

// render formats keys the way List.String does.
func render[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// seq returns [lo, lo+1, ..., hi].
func seq(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

// TestList_Creation follows the end-operation walkthrough: build, grow at
// both ends, then shrink back down to empty.
func TestList_Creation(t *testing.T) {
	l := dllist.FromSlice([]string{"Alice", "Bob", "Carol"})
	assert.Equal(t, "[Alice, Bob, Carol]", l.String())

	l.InsertBack("Dave")
	assert.Equal(t, "[Alice, Bob, Carol, Dave]", l.String())
	l.InsertFront("Zora")
	assert.Equal(t, "[Zora, Alice, Bob, Carol, Dave]", l.String())

	_, err := l.RemoveBack()
	require.NoError(t, err)
	_, err = l.RemoveBack()
	require.NoError(t, err)
	assert.Equal(t, "[Zora, Alice, Bob]", l.String())

	_, err = l.RemoveFront()
	require.NoError(t, err)
	_, err = l.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, "[Bob]", l.String())

	n, err := l.RemoveBack()
	require.NoError(t, err)
	assert.Equal(t, "Bob", n.Key)
	assert.Equal(t, "[]", l.String())
	assert.Equal(t, 0, l.Len())
	require.NoError(t, dllist.CheckLinks(l))
}

// TestList_RenderMatchesConstruction checks rendering right after bulk
// construction for several key types and sizes.
func TestList_RenderMatchesConstruction(t *testing.T) {
	for n := 0; n < 12; n++ {
		keys := seq(1, n)
		l := dllist.FromSlice(keys)
		assert.Equal(t, render(keys), l.String(), "n=%d", n)
		assert.Equal(t, n, l.Len())
		require.NoError(t, dllist.CheckLinks(l))
	}
	floats := []float64{1.5, -2, 0}
	assert.Equal(t, "[1.5, -2, 0]", dllist.FromSlice(floats).String())
}

// TestList_RemoveFromEmpty verifies both ends report ErrEmptyList and leave
// the list untouched.
func TestList_RemoveFromEmpty(t *testing.T) {
	l := dllist.New[int]()
	mods := dllist.Mods(l)

	n, err := l.RemoveFront()
	assert.ErrorIs(t, err, dllist.ErrEmptyList)
	assert.Nil(t, n)

	n, err = l.RemoveBack()
	assert.ErrorIs(t, err, dllist.ErrEmptyList)
	assert.Nil(t, n)

	assert.Equal(t, mods, dllist.Mods(l), "failed removals must not splice")
	assert.Equal(t, "[]", l.String())
}

// TestList_RemoveShrinksByOne drains lists of several sizes alternating ends.
func TestList_RemoveShrinksByOne(t *testing.T) {
	for n := 1; n <= 9; n++ {
		l := dllist.FromSlice(seq(1, n))
		for want := n - 1; want >= 0; want-- {
			var err error
			if want%2 == 0 {
				_, err = l.RemoveFront()
			} else {
				_, err = l.RemoveBack()
			}
			require.NoError(t, err)
			assert.Equal(t, want, l.Len())
			assert.Equal(t, want, len(l.Slice()))
		}
		assert.Equal(t, "[]", l.String())
		_, err := l.RemoveFront()
		assert.ErrorIs(t, err, dllist.ErrEmptyList)
	}
}

// TestList_ZeroValue ensures an uninitialised List behaves as empty.
func TestList_ZeroValue(t *testing.T) {
	var l dllist.List[string]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, "[]", l.String())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	l.InsertBack("b")
	l.InsertFront("a")
	assert.Equal(t, "[a, b]", l.String())
	require.NoError(t, dllist.CheckLinks(&l))
}

// TestList_Rotate reproduces the rotation walkthrough.
func TestList_Rotate(t *testing.T) {
	l := dllist.FromSlice(seq(1, 9))

	require.NoError(t, l.RotateLeft(3))
	assert.Equal(t, "[4, 5, 6, 7, 8, 9, 1, 2, 3]", l.String())

	require.NoError(t, l.RotateLeft(0))
	assert.Equal(t, "[4, 5, 6, 7, 8, 9, 1, 2, 3]", l.String())

	require.NoError(t, l.RotateRight(8))
	assert.Equal(t, "[5, 6, 7, 8, 9, 1, 2, 3, 4]", l.String())
	require.NoError(t, dllist.CheckLinks(l))
}

// TestList_RotateModuloAndInverse checks rotateLeft(s) == rotateLeft(s mod n)
// and that rotateRight(s) undoes rotateLeft(s).
func TestList_RotateModuloAndInverse(t *testing.T) {
	const n = 7
	keys := seq(1, n)
	for s := 0; s <= 3*n; s++ {
		a := dllist.FromSlice(keys)
		b := dllist.FromSlice(keys)
		require.NoError(t, a.RotateLeft(s))
		require.NoError(t, b.RotateLeft(s%n))
		assert.Equal(t, b.String(), a.String(), "s=%d", s)

		want := append(append([]int{}, keys[s%n:]...), keys[:s%n]...)
		assert.Equal(t, want, a.Slice(), "s=%d", s)

		require.NoError(t, a.RotateRight(s))
		assert.Equal(t, keys, a.Slice(), "rotateRight(%d) must undo rotateLeft(%d)", s, s)
		require.NoError(t, dllist.CheckLinks(a))
	}
}

// TestList_RotateErrors covers the argument and empty-list checks.
func TestList_RotateErrors(t *testing.T) {
	empty := dllist.New[int]()
	assert.NoError(t, empty.RotateLeft(0), "zero steps on empty list is fine")
	assert.NoError(t, empty.RotateRight(0))
	assert.ErrorIs(t, empty.RotateLeft(1), dllist.ErrEmptyList)
	assert.ErrorIs(t, empty.RotateRight(5), dllist.ErrEmptyList)

	l := dllist.FromSlice([]int{1, 2, 3})
	err := l.RotateLeft(-1)
	assert.ErrorIs(t, err, dllist.ErrNegativeSteps)
	assert.Contains(t, err.Error(), "RotateLeft(-1)")
	assert.ErrorIs(t, l.RotateRight(-4), dllist.ErrNegativeSteps)
	assert.Equal(t, "[1, 2, 3]", l.String(), "failed rotation must not mutate")
}

// TestList_RemoveIf chains several predicates over [1..9].
func TestList_RemoveIf(t *testing.T) {
	l := dllist.FromSlice(seq(1, 9))

	assert.Equal(t, 4, l.RemoveIf(func(e int) bool { return e%2 == 0 }))
	assert.Equal(t, "[1, 3, 5, 7, 9]", l.String())

	assert.Equal(t, 3, l.RemoveIf(func(e int) bool { return 2 < e && e < 8 }))
	assert.Equal(t, "[1, 9]", l.String())

	assert.Equal(t, 2, l.RemoveIf(func(int) bool { return true }))
	assert.Equal(t, "[]", l.String())
	assert.Equal(t, 0, l.RemoveIf(func(int) bool { return true }))
	require.NoError(t, dllist.CheckLinks(l))
}

// TestList_RemoveIfAdjacentMatches removes runs of consecutive matches,
// including both ends.
func TestList_RemoveIfAdjacentMatches(t *testing.T) {
	l := dllist.FromSlice([]int{0, 0, 1, 0, 0, 0, 2, 0})
	assert.Equal(t, 6, l.RemoveIf(func(e int) bool { return e == 0 }))
	assert.Equal(t, []int{1, 2}, l.Slice())
	require.NoError(t, dllist.CheckLinks(l))
}

// TestList_Contains covers hits, misses, empty lists and the predicate form.
func TestList_Contains(t *testing.T) {
	l := dllist.FromSlice([]string{"Alice", "Bob", "Carol"})
	assert.True(t, dllist.Contains(l, "Alice"))
	assert.True(t, dllist.Contains(l, "Carol"))
	assert.False(t, dllist.Contains(l, "Dave"))
	assert.False(t, dllist.Contains(dllist.New[string](), ""))

	zeroes := dllist.FromSlice([]int{3, 4})
	assert.False(t, dllist.Contains(zeroes, 0), "the sentinel's zero key must never match")

	assert.True(t, l.ContainsFunc(func(s string) bool { return strings.HasPrefix(s, "B") }))
	assert.False(t, l.ContainsFunc(func(s string) bool { return s == "" }))
	assert.Equal(t, "[Alice, Bob, Carol]", l.String(), "Contains must not mutate")
}

// TestList_FrontBack verifies the boundary accessors.
func TestList_FrontBack(t *testing.T) {
	l := dllist.New[int]()
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	b := l.InsertBack(2)
	f := l.InsertFront(1)
	assert.Same(t, f, l.Front())
	assert.Same(t, b, l.Back())
}

// TestList_Formatter checks WithFormatter and that a nil formatter is ignored.
func TestList_Formatter(t *testing.T) {
	quoted := dllist.FromSlice([]string{"a", "b"}, dllist.WithFormatter(func(k any) string {
		return fmt.Sprintf("%q", k)
	}))
	assert.Equal(t, `["a", "b"]`, quoted.String())

	plain := dllist.FromSlice([]string{"a"}, dllist.WithFormatter(nil))
	assert.Equal(t, "[a]", plain.String())

	opts := dllist.DefaultOptions()
	assert.False(t, opts.FailFast)
	assert.Equal(t, "7", opts.Format(7))
}

// TestList_Iterators covers All, Backward, Nodes, Slice and Collect.
func TestList_Iterators(t *testing.T) {
	keys := seq(1, 9)
	l := dllist.FromSlice(keys)

	var forward []int
	for k := range l.All() {
		forward = append(forward, k)
	}
	assert.Equal(t, keys, forward)

	var backward []int
	for k := range l.Backward() {
		backward = append(backward, k)
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, backward)

	var firstThree []int
	for k := range l.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, k)
	}
	assert.Equal(t, []int{1, 2, 3}, firstThree)

	for n := range l.Nodes() {
		if n.Key%3 == 0 {
			n.Unlink()
		}
	}
	assert.Equal(t, []int{1, 2, 4, 5, 7, 8}, l.Slice())
	require.NoError(t, dllist.CheckLinks(l))

	c := dllist.Collect(l.Backward())
	assert.Equal(t, "[8, 7, 5, 4, 2, 1]", c.String())
	assert.Empty(t, dllist.New[int]().Slice())
}

// TestList_NodesUnlinkSuccessor removes the node after the yielded one
// during the walk; iteration continues with the new successor.
func TestList_NodesUnlinkSuccessor(t *testing.T) {
	l := dllist.FromSlice([]int{1, 2, 3, 4})
	var visited []int
	for n := range l.Nodes() {
		visited = append(visited, n.Key)
		if next := n.Next(); next != nil {
			next.Unlink()
		}
	}
	assert.Equal(t, []int{1, 3}, visited)
	assert.Equal(t, "[1, 3]", l.String())
	require.NoError(t, dllist.CheckLinks(l))

	// Dropping both the yielded node and its successor ends the walk.
	l = dllist.FromSlice([]int{1, 2, 3})
	visited = visited[:0]
	for n := range l.Nodes() {
		visited = append(visited, n.Key)
		if next := n.Next(); next != nil {
			next.Unlink()
		}
		n.Unlink()
	}
	assert.Equal(t, []int{1}, visited)
	assert.Equal(t, "[3]", l.String())
	require.NoError(t, dllist.CheckLinks(l))
}
