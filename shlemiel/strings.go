package shlemiel

import (
	"slices"
	"unicode/utf8"
)

// RemoveShortStringsShlemiel deletes, in place, every string with fewer than
// n characters and returns the shortened slice. Each deletion shifts the
// whole tail left.
func RemoveShortStringsShlemiel(strs []string, n int) []string {
	for i := 0; i < len(strs); {
		if utf8.RuneCountInString(strs[i]) < n {
			strs = slices.Delete(strs, i, i+1)
			continue
		}
		i++
	}

	return strs
}

// RemoveShortStrings is RemoveShortStringsShlemiel with a single compaction
// pass: every survivor moves at most once.
func RemoveShortStrings(strs []string, n int) []string {
	return slices.DeleteFunc(strs, func(s string) bool {
		return utf8.RuneCountInString(s) < n
	})
}
