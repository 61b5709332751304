package partition

import "errors"

// Sentinel errors for partitioning.
var (
	// ErrNoRegions indicates AssignZones was called with an empty region list.
	ErrNoRegions = errors.New("partition: region list must be non-empty")
	// ErrZoneCount indicates a non-positive zone count.
	ErrZoneCount = errors.New("partition: zone count must be positive")
	// ErrTableMiss is an internal invariant violation: the DP reconstruction
	// walk found no entry for a (k, trim) pair it expected to have filled.
	ErrTableMiss = errors.New("partition: dynamic-programming table missing expected entry")
)
