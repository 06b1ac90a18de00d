package topology

import (
	"github.com/pkg/errors"

	"github.com/denismitr/topokit/set"
)

// NeighbourhoodSystem returns the family of all neighbourhoods of point
// under top: every subset of s that contains some open set which itself
// contains point. top must pass IsTopology over s and point must be a
// member of s.
func NeighbourhoodSystem[T comparable](s set.Set[T], top *Family[T], point T) (*Family[T], error) {
	if s == nil {
		return nil, errors.Wrap(ErrNilInput, "reference set")
	}
	if top == nil {
		return nil, errors.Wrap(ErrNilInput, "topology")
	}

	valid, err := IsTopology[T](top, s)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrNotTopology
	}
	if !s.Has(point) {
		return nil, errors.Wrapf(ErrPointNotInSet, "point %v", point)
	}

	// The minimal open set containing point. At least one open set
	// qualifies because s itself is a member of top. The accumulator is
	// always a fresh set, members of top are never modified. The result
	// stays open: the family is finite and closed under pairwise
	// intersection, so the repeated pairwise intersections below never
	// leave it.
	var smallest *set.HashSet[T]
	for _, open := range top.Subsets() {
		if !open.Has(point) {
			continue
		}
		if smallest == nil {
			smallest = open.Clone()
		} else {
			smallest = set.Intersect[T](smallest, open)
		}
	}

	ps, err := PowerSet[T](s)
	if err != nil {
		return nil, err
	}

	neighbourhoods := newFamily(ps.u)
	for _, sub := range ps.Subsets() {
		if smallest.IsSubsetOf(sub) {
			if insErr := neighbourhoods.Insert(sub); insErr != nil {
				return nil, insErr
			}
		}
	}

	return neighbourhoods, nil
}
