package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

// FilterEmpty drops the zero values of list ("", 0, false).
func FilterEmpty[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	var emptyValue T
	for _, v := range list {
		if v == emptyValue {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Unique keeps the first occurrence of every value, in order.
func Unique[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// Standardize returns the distinct non-zero values of list in ascending
// order. A nil list gives an empty one.
func Standardize[T constraints.Ordered](list []T) []T {
	result := Unique(FilterEmpty(list))
	originSlices.Sort(result)
	return result
}
