package partition

// Region is a rectangular, disjoint area of the grid with precomputed
// node and edge counts. The partitioner assigns a Zone to each Region;
// every node inside inherits that zone.
type Region struct {
	ID         int
	X, Y, W, H int
	NodeCount  int
	EdgeCount  int
	// Zone is filled in by AssignZones; callers should ignore it on input.
	Zone int
}
