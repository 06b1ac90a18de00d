package topology

import "errors"

var (
	ErrNilInput        = errors.New("required input is absent")
	ErrTooManyElements = errors.New("reference set exceeds the supported size")
	ErrNotTopology     = errors.New("family is not a topology")
	ErrPointNotInSet   = errors.New("point is not a member of the reference set")
	ErrNotInUniverse   = errors.New("subset contains an element outside the base set")
)
