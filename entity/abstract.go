package entity

import "strings"

// AbstractFromIndex rebuilds abstract text from the positional inverted index
// the snapshot ships in place of plain text: a map from word to the zero
// based positions at which it occurs. Slots are allocated up to the maximum
// position, each word placed at each of its positions, and the slots joined
// with single spaces. An absent or empty index yields the empty string, which
// callers treat as absent.
func AbstractFromIndex(index map[string][]int) string {
	max := -1
	for _, positions := range index {
		for _, p := range positions {
			if p > max {
				max = p
			}
		}
	}
	if max < 0 {
		return ""
	}
	slots := make([]string, max+1)
	for word, positions := range index {
		for _, p := range positions {
			if p >= 0 {
				slots[p] = word
			}
		}
	}
	return strings.Join(slots, " ")
}
