package topology

import "errors"

// ErrZoneOutOfRange is returned when Build is asked to build a
// topology for a negative zone id. A zone id at or above the zone
// count is not detected; Build returns an empty topology for it.
var ErrZoneOutOfRange = errors.New("topology: zone out of range")
