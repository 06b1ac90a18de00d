package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Union returns a fresh set with all items of a and all items of b.
// Neither operand is modified.
func Union[T comparable](a, b Set[T]) *HashSet[T] {
	result := &HashSet[T]{
		m: make(map[T]struct{}, a.Len()+b.Len()),
	}
	for _, item := range a.Items() {
		result.m[item] = struct{}{}
	}
	for _, item := range b.Items() {
		result.m[item] = struct{}{}
	}
	return result
}

// Intersect returns a fresh set with the items present in both a and b.
// Neither operand is modified.
func Intersect[T comparable](a, b Set[T]) *HashSet[T] {
	result := &HashSet[T]{
		m: make(map[T]struct{}),
	}
	for _, item := range a.Items() {
		if b.Has(item) {
			result.m[item] = struct{}{}
		}
	}
	return result
}

// SortedItems returns the items of s in ascending order, regardless
// of the iteration order of the underlying set.
func SortedItems[T constraints.Ordered](s Set[T]) []T {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}
