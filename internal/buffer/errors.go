package buffer

import "errors"

// ErrOutOfBounds indicates that an insert or delete index lies outside the
// valid range for the buffer. The receiving buffer is never altered; the
// caller decides whether to retry with corrected indices or surface the
// error.
var ErrOutOfBounds = errors.New("index out of bounds")
