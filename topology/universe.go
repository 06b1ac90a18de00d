package topology

import (
	"github.com/denismitr/topokit/set"
)

// maskWidth caps the number of base set elements a single bitmask can index.
const maskWidth = 30

// mask is the canonical form of a subset: bit j is set iff element j of
// the universe belongs to the subset. Two subsets with the same members
// always canonicalize to the same mask, which makes family membership an
// integer lookup instead of a structural comparison.
type mask = uint32

// universe fixes an enumeration order over the elements of a base set for
// the duration of one call. The order carries no semantic meaning.
type universe[T comparable] struct {
	elements []T
	index    map[T]int
}

func newUniverse[T comparable](s set.Set[T]) *universe[T] {
	items := s.Items()
	u := &universe[T]{
		elements: items,
		index:    make(map[T]int, len(items)),
	}
	for i, el := range items {
		u.index[el] = i
	}
	return u
}

func (u *universe[T]) size() int {
	return len(u.elements)
}

// full is the mask of the base set itself.
func (u *universe[T]) full() mask {
	return mask(1)<<u.size() - 1
}

// maskOf canonicalizes sub. ok is false when sub holds an element the
// universe does not know about.
func (u *universe[T]) maskOf(sub set.Set[T]) (mask, bool) {
	var m mask
	for _, el := range sub.Items() {
		idx, found := u.index[el]
		if !found {
			return 0, false
		}
		m |= mask(1) << idx
	}
	return m, true
}

// subsetOf materializes a fresh subset from its canonical mask.
func (u *universe[T]) subsetOf(m mask) *set.HashSet[T] {
	sub := set.NewHashSet[T]()
	for j, el := range u.elements {
		if m&(mask(1)<<j) != 0 {
			sub.Insert(el)
		}
	}
	return sub
}
