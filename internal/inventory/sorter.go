package inventory

import (
	"sort"
	"strings"
)

// SortEntries orders entries by increasing depth and, within a depth, by the
// lowercased relative path. Sorting is stable so equal keys keep walk order.
func SortEntries(entries []ReadmeEntry) {
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		if entries[firstIndex].Depth != entries[secondIndex].Depth {
			return entries[firstIndex].Depth < entries[secondIndex].Depth
		}
		return strings.ToLower(entries[firstIndex].RelativePath) < strings.ToLower(entries[secondIndex].RelativePath)
	})
}
