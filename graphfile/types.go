package graphfile

import (
	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/partition"
)

// Parsed holds everything graphfile.Parse extracts from an input file.
// Regions is nil when the file declares zero region rectangles.
type Parsed struct {
	Graph   *gridgraph.Graph
	Regions []partition.Region
}
