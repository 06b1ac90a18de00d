package topology

import (
	"github.com/pkg/errors"

	"github.com/denismitr/topokit/set"
)

// IsTopology reports whether candidate satisfies the topology axioms over
// the reference set s: candidate contains both the empty subset and s,
// and is closed under pairwise union and intersection. A false result
// always means "not a topology"; absent inputs are reported as an error
// instead.
func IsTopology[T comparable](candidate *Family[T], s set.Set[T]) (bool, error) {
	if candidate == nil {
		return false, errors.Wrap(ErrNilInput, "candidate family")
	}
	if s == nil {
		return false, errors.Wrap(ErrNilInput, "reference set")
	}

	full, ok := candidate.u.maskOf(s)
	if !ok {
		// s holds an element no member of candidate can hold,
		// so candidate cannot contain s
		return false, nil
	}

	if !candidate.hasMask(0) || !candidate.hasMask(full) {
		return false, nil
	}

	return pairwiseClosed(candidate.masks(), candidate.hasMask), nil
}

// pairwiseClosed reports whether members is closed under pairwise union
// and intersection, with has answering membership by canonical mask. Both
// the verifier and the enumerator check closure through this one helper.
func pairwiseClosed(members []mask, has func(m mask) bool) bool {
	for _, m1 := range members {
		for _, m2 := range members {
			if !has(m1|m2) || !has(m1&m2) {
				return false
			}
		}
	}

	return true
}
