package topology

import (
	"context"

	"github.com/pkg/errors"

	"github.com/denismitr/topokit/set"
)

// MaxElements bounds the reference set size for enumeration. The reduced
// search space is 2^(2^n - 2) candidate families, already 2^30 at n = 5.
const MaxElements = 5

// progressEvery is the number of candidates between two progress reports.
const progressEvery = 100

type (
	// Progress receives a completion percentage in [0, 100]. It is
	// called with 0 before the search starts and again after the
	// search terminates, whether it completed or was cancelled.
	Progress func(pct float64)

	Option func(cfg *enumConfig)

	enumConfig struct {
		progress Progress
	}
)

// WithProgress attaches a progress sink to an enumeration.
func WithProgress(fn Progress) Option {
	return func(cfg *enumConfig) {
		if fn != nil {
			cfg.progress = fn
		}
	}
}

// Enumerate drives yield with every topology on s, one family per
// accepted candidate. The search checks ctx before each candidate and
// returns ctx.Err() once it is done, without yielding a partial result.
// A non-nil error from yield stops the search and is returned as is.
//
// For a fixed s and a fixed element order of s.Items() the sequence of
// yielded families is deterministic, but its order carries no meaning.
// Distinct candidates always produce distinct families, so no
// deduplication happens and none is needed.
func Enumerate[T comparable](
	ctx context.Context,
	s set.Set[T],
	yield func(f *Family[T]) error,
	opts ...Option,
) error {
	if s == nil {
		return errors.Wrap(ErrNilInput, "reference set")
	}
	if yield == nil {
		return errors.Wrap(ErrNilInput, "yield callback")
	}
	if s.Len() > MaxElements {
		return errors.Wrapf(
			ErrTooManyElements,
			"enumeration over %d elements means 2^(2^%d-2) candidates",
			s.Len(), s.Len(),
		)
	}

	cfg := enumConfig{
		progress: func(float64) {},
	}
	for _, o := range opts {
		o(&cfg)
	}

	u := newUniverse[T](s)
	full := u.full()

	// power set of s minus the empty subset and s itself; every valid
	// topology must contain those two, so they are re-added to each
	// candidate instead of being searched over
	total := uint64(1) << u.size()
	reduced := make([]mask, 0, total)
	for m := uint64(0); m < total; m++ {
		if m != 0 && mask(m) != full {
			reduced = append(reduced, mask(m))
		}
	}

	searchSpace := uint64(1) << len(reduced)

	cfg.progress(0)
	defer cfg.progress(0) // terminal state, after completion or cancellation

	var present [1 << MaxElements]bool
	members := make([]mask, 0, len(reduced)+2)

	for i := uint64(0); i < searchSpace; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i != 0 && i%progressEvery == 0 {
			cfg.progress(100 * float64(i) / float64(searchSpace))
		}

		members = members[:0]
		members = append(members, 0)
		for j := range reduced {
			if i&(uint64(1)<<j) != 0 {
				members = append(members, reduced[j])
			}
		}
		if full != 0 {
			members = append(members, full)
		}

		if !closedUnderPairs(members, &present) {
			continue
		}

		f := newFamily(u)
		for _, m := range members {
			f.insertMask(m)
		}
		if err := yield(f); err != nil {
			return err
		}
	}

	return nil
}

// closedUnderPairs runs the verifier's pairwise closure check against a
// scratch presence table indexed by subset mask; the table is restored to
// all-false before returning.
func closedUnderPairs(members []mask, present *[1 << MaxElements]bool) bool {
	for _, m := range members {
		present[m] = true
	}
	defer func() {
		for _, m := range members {
			present[m] = false
		}
	}()

	return pairwiseClosed(members, func(m mask) bool {
		return present[m]
	})
}

// Topologies collects every topology on s into a slice. It is a
// convenience wrapper around Enumerate with no cancellation and no
// progress reporting.
func Topologies[T comparable](s set.Set[T]) ([]*Family[T], error) {
	var result []*Family[T]
	err := Enumerate[T](context.Background(), s, func(f *Family[T]) error {
		result = append(result, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
