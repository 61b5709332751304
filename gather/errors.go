package gather

import "errors"

// ErrMalformedPayload is returned when a gather payload's length is
// not a multiple of the packed (node, count) pair size.
var ErrMalformedPayload = errors.New("gather: malformed payload")
