package topology

import "sort"

// Topology is the boundary view of the graph as seen by a single zone.
type Topology struct {
	Zone int

	// LocalNodes is the ascending list of node ids owned by Zone.
	LocalNodes []int

	// LocalEdgeCount is the sum of adjacency run lengths (including
	// self-loops) over LocalNodes.
	LocalEdgeCount int

	// ExportNodes[y] lists local nodes with at least one out-edge into
	// zone y, in the order Build first encountered them while
	// iterating LocalNodes.
	ExportNodes map[int][]int

	// ImportNodes[y] lists nodes owned by zone y that are out-neighbors
	// of at least one local node, sorted ascending.
	ImportNodes map[int][]int
}

// Peers returns the foreign zone ids this topology has a boundary
// with, in ascending order.
func (t *Topology) Peers() []int {
	seen := make(map[int]bool, len(t.ExportNodes)+len(t.ImportNodes))
	for y := range t.ExportNodes {
		seen[y] = true
	}
	for y := range t.ImportNodes {
		seen[y] = true
	}

	peers := make([]int, 0, len(seen))
	for y := range seen {
		peers = append(peers, y)
	}
	sort.Ints(peers)

	return peers
}
