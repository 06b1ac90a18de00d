package set

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]struct{}
}

var _ Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{
		m: make(map[T]struct{}, len(items)),
	}

	for _, item := range items {
		s.m[item] = struct{}{}
	}

	return s
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]struct{})
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	clone := &HashSet[T]{
		m: make(map[T]struct{}, len(s.m)),
	}
	for item := range s.m {
		clone.m[item] = struct{}{}
	}
	return clone
}

// IsSubsetOf reports whether every item of s is also an item of other.
func (s *HashSet[T]) IsSubsetOf(other Set[T]) bool {
	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same items.
func (s *HashSet[T]) Equal(other Set[T]) bool {
	if other == nil {
		return false
	}
	return len(s.m) == other.Len() && s.IsSubsetOf(other)
}
