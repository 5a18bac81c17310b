package utils

import (
	"sort"
	"strings"
)

// SearchRecords filters items to those where any of the extracted fields
// contains the search term, case-insensitively. A blank term returns the
// input unchanged.
func SearchRecords[T any](items []T, term string, fields func(T) []string) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}
	lower := strings.ToLower(term)

	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), lower) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// SortRecords sorts a copy of items with the given less function, reversed
// when descending. The input slice is left untouched and ties keep their
// insertion order.
func SortRecords[T any](items []T, less func(a, b T) bool, descending bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
