package aggregators

import "errors"

// ErrUnsupportedRecord is returned by Add for a record type it has no aggregate for.
var ErrUnsupportedRecord = errors.New("unsupported trace record")
