package output

import "errors"

// ErrUnsupportedFormat is returned when a requested output format has no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")
