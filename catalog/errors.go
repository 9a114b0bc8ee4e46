package catalog

import "errors"

var (
	// ErrUnsupportedFormat indicates a catalog file extension that is
	// neither .json nor .csv.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
