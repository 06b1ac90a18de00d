// Package topology enumerates and validates topologies on finite sets:
// families of subsets closed under union and intersection that contain
// both the empty subset and the base set.
package topology

import (
	"context"

	"github.com/pkg/errors"

	"github.com/denismitr/topokit/orderedmap"
	"github.com/denismitr/topokit/set"
)

// Family is a set of subsets of a fixed base set with structural
// membership on both levels: two subsets with the same elements are the
// same member, and two families with the same members are equal. Members
// iterate in insertion order.
type Family[T comparable] struct {
	u       *universe[T]
	members *orderedmap.OrderedMap[mask, *set.HashSet[T]]
}

// NewFamily returns an empty family over the given base set.
func NewFamily[T comparable](baseSet set.Set[T]) (*Family[T], error) {
	if baseSet == nil {
		return nil, errors.Wrap(ErrNilInput, "base set")
	}
	if baseSet.Len() > maskWidth {
		return nil, errors.Wrapf(ErrTooManyElements, "cannot index subsets of %d elements", baseSet.Len())
	}
	return newFamily(newUniverse[T](baseSet)), nil
}

func newFamily[T comparable](u *universe[T]) *Family[T] {
	return &Family[T]{
		u:       u,
		members: orderedmap.NewOrderedMap[mask, *set.HashSet[T]](),
	}
}

// Insert adds sub to the family. Inserting a subset whose members are
// already present under another value is a no-op. The family stores its
// own canonical copy, so later mutation of sub cannot corrupt it.
func (f *Family[T]) Insert(sub set.Set[T]) error {
	if sub == nil {
		return errors.Wrap(ErrNilInput, "subset")
	}
	m, ok := f.u.maskOf(sub)
	if !ok {
		return ErrNotInUniverse
	}
	f.insertMask(m)
	return nil
}

func (f *Family[T]) insertMask(m mask) {
	f.members.SetNX(m, f.u.subsetOf(m))
}

func (f *Family[T]) hasMask(m mask) bool {
	return f.members.Has(m)
}

func (f *Family[T]) masks() []mask {
	ms := make([]mask, 0, f.members.Len())
	f.members.ForEach(func(m mask, _ *set.HashSet[T], _ int) {
		ms = append(ms, m)
	})
	return ms
}

// Has reports structural membership of sub.
func (f *Family[T]) Has(sub set.Set[T]) bool {
	if sub == nil {
		return false
	}
	m, ok := f.u.maskOf(sub)
	return ok && f.members.Has(m)
}

func (f *Family[T]) Len() int {
	return f.members.Len()
}

// Subsets returns the members in insertion order. Callers must treat the
// returned subsets as read-only.
func (f *Family[T]) Subsets() []*set.HashSet[T] {
	subs := make([]*set.HashSet[T], 0, f.members.Len())
	f.members.ForEach(func(_ mask, sub *set.HashSet[T], _ int) {
		subs = append(subs, sub)
	})
	return subs
}

// All streams the members in insertion order until the family is
// exhausted or ctx is done.
func (f *Family[T]) All(ctx context.Context) <-chan *set.HashSet[T] {
	resultCh := make(chan *set.HashSet[T])

	go func() {
		defer close(resultCh)

		for pair := range f.members.Pairs(ctx) {
			select {
			case resultCh <- pair.Value:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

// Contains reports whether every member of other is also a member of f.
// The two families may be built over different base sets.
func (f *Family[T]) Contains(other *Family[T]) bool {
	if other == nil {
		return false
	}
	for _, sub := range other.Subsets() {
		if !f.Has(sub) {
			return false
		}
	}
	return true
}

// Equal reports whether f and other contain exactly the same subsets.
func (f *Family[T]) Equal(other *Family[T]) bool {
	if other == nil {
		return false
	}
	return f.Len() == other.Len() && f.Contains(other)
}
