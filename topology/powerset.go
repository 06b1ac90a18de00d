package topology

import (
	"github.com/pkg/errors"

	"github.com/denismitr/topokit/set"
)

// PowerSet returns the family of all 2^|s| subsets of s, including the
// empty subset and s itself.
func PowerSet[T comparable](s set.Set[T]) (*Family[T], error) {
	if s == nil {
		return nil, errors.Wrap(ErrNilInput, "reference set")
	}
	if s.Len() > maskWidth {
		return nil, errors.Wrapf(ErrTooManyElements, "power set of %d elements cannot be indexed", s.Len())
	}

	u := newUniverse[T](s)
	f := newFamily(u)

	// every mask in [0, 2^n) is a distinct subset of s
	total := uint64(1) << u.size()
	for i := uint64(0); i < total; i++ {
		f.insertMask(mask(i))
	}

	return f, nil
}
