package boot

import "errors"

// ErrRegionsRequired is returned when the graph file declares no
// region rectangles but more than one zone was requested; the
// partitioner has nothing to assign zones to.
var ErrRegionsRequired = errors.New("boot: graph file has no regions but zone count > 1")
