package gridgraph

// Graph is an immutable, compressed-adjacency representation of a
// W×H grid graph. Node n's adjacency run is
// Adj[AdjStart[n]:AdjStart[n+1]], with Adj[AdjStart[n]] == n (the
// self-loop) always first.
type Graph struct {
	// Width and Height are the grid dimensions; N = Width*Height.
	Width, Height int
	// N is the node count (Width * Height).
	N int
	// E is the number of directed edges, excluding the N implicit self-loops.
	E int
	// AdjStart has length N+1; AdjStart[N] == N+E.
	AdjStart []int
	// Adj has length N+E.
	Adj []int
	// ZoneOf has length N and holds each node's assigned zone, or -1
	// before a partition has been applied.
	ZoneOf []int
}

// Coordinate converts a row-major node id back to (x, y).
// Complexity: O(1).
func (g *Graph) Coordinate(n int) (x, y int) {
	return n % g.Width, n / g.Width
}

// NodeID maps (x, y) to its row-major node id.
// Complexity: O(1).
func (g *Graph) NodeID(x, y int) int {
	return y*g.Width + x
}

// AdjRun returns node n's full adjacency run, self-loop included. The
// returned slice aliases Graph's internal storage and must not be
// mutated by callers.
// Complexity: O(1).
func (g *Graph) AdjRun(n int) []int {
	return g.Adj[g.AdjStart[n]:g.AdjStart[n+1]]
}

// Neighbors returns node n's out-neighbors, excluding the leading
// self-loop. Duplicate edges in the input are not removed.
// Complexity: O(1).
func (g *Graph) Neighbors(n int) []int {
	return g.Adj[g.AdjStart[n]+1 : g.AdjStart[n+1]]
}

// OutDegree returns the number of out-neighbors of n, excluding the
// self-loop.
// Complexity: O(1).
func (g *Graph) OutDegree(n int) int {
	return g.AdjStart[n+1] - g.AdjStart[n] - 1
}

// AssignZones installs a zone assignment computed by the partitioner.
// zoneOf must have length N and every entry in [0, zoneCount).
// Complexity: O(N).
func (g *Graph) AssignZones(zoneOf []int, zoneCount int) error {
	if len(zoneOf) != g.N {
		return ErrZoneCountMismatch
	}
	for _, z := range zoneOf {
		if z < 0 || z >= zoneCount {
			return ErrZoneOutOfRange
		}
	}
	g.ZoneOf = append([]int(nil), zoneOf...)

	return nil
}
