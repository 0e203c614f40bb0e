package plot

import (
	"errors"
)

var (
	// ErrExtract reports a column value that could not be coerced to
	// the expected numeric or categorical type.
	ErrExtract = errors.New("value can not be extracted")
	// ErrEmptyRange reports a min/max reduction over zero rows.
	ErrEmptyRange = errors.New("empty range")
	// ErrIncompatibleRange reports a union of ranges that are not
	// commensurable, like categorical with continuous.
	ErrIncompatibleRange = errors.New("ranges can not be merged")
)
