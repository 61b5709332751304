package gridgraph

// Builder assembles a Graph from a stream of directed edges supplied in
// non-decreasing head order, inserting the mandatory self-loop for
// every node and padding any node with no declared edges into an
// isolated (self-loop only) run. This mirrors the shape the original
// grid-graph file format is parsed into: AddEdge corresponds to one
// "e HEAD TAIL" line, called in file order.
type Builder struct {
	width, height int
	n             int
	declaredEdges int
	addedEdges    int

	adj      []int
	adjStart []int
	nextNode int // next node id that still needs its adjacency run opened
	cursor   int // next free slot in adj
}

// NewBuilder starts a Builder for a width×height grid that will receive
// declaredEdges directed edges (self-loops excluded).
func NewBuilder(width, height, declaredEdges int) (*Builder, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height

	return &Builder{
		width:         width,
		height:        height,
		n:             n,
		declaredEdges: declaredEdges,
		adj:           make([]int, n+declaredEdges),
		adjStart:      make([]int, n+1),
	}, nil
}

// openNodesUpTo emits self-loops for every node from b.nextNode through
// head inclusive, opening their adjacency runs.
func (b *Builder) openNodesUpTo(head int) {
	for b.nextNode <= head {
		b.adjStart[b.nextNode] = b.cursor
		b.adj[b.cursor] = b.nextNode
		b.cursor++
		b.nextNode++
	}
}

// AddEdge records a directed edge head→tail. Edges must be added with
// non-decreasing head values, matching the on-disk file order.
// Complexity: amortized O(1).
func (b *Builder) AddEdge(head, tail int) error {
	if head < 0 || head >= b.n || tail < 0 || tail >= b.n {
		return ErrNodeOutOfRange
	}
	if head < b.nextNode-1 {
		return ErrOutOfOrder
	}
	if b.addedEdges >= b.declaredEdges {
		return ErrTooManyEdges
	}
	b.openNodesUpTo(head)
	b.adj[b.cursor] = tail
	b.cursor++
	b.addedEdges++

	return nil
}

// Build finalizes the Graph. Every declared edge must have been added.
// Nodes past the last edge's head (including all nodes, if no edges
// were ever added) are padded with self-loop-only runs.
// Complexity: O(N).
func (b *Builder) Build() (*Graph, error) {
	if b.addedEdges != b.declaredEdges {
		return nil, ErrIncompleteBuild
	}
	b.openNodesUpTo(b.n - 1)
	b.adjStart[b.n] = b.cursor

	zoneOf := make([]int, b.n)
	for i := range zoneOf {
		zoneOf[i] = -1
	}

	return &Graph{
		Width:    b.width,
		Height:   b.height,
		N:        b.n,
		E:        b.declaredEdges,
		AdjStart: b.adjStart,
		Adj:      b.adj,
		ZoneOf:   zoneOf,
	}, nil
}
