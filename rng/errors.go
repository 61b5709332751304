package rng

import "errors"

// ErrNoBucket indicates that weighted selection failed to find a bucket
// containing the drawn value. This can only happen if the cumulative
// weight table passed to SelectBucket was built incorrectly — it is a
// programming error, not a runtime condition callers should expect.
var ErrNoBucket = errors.New("rng: weighted selection found no bucket")
