package topology

import (
	"fmt"
	"sort"

	"github.com/gridzone/ratsim/gridgraph"
)

// Build derives zone's boundary topology from g in two passes: the
// first pass over all nodes collects the local nodes and, per foreign
// zone, the set of import nodes (turned into sorted import lists), and
// the second pass over the local nodes fills the export lists.
func Build(g *gridgraph.Graph, zone int) (*Topology, error) {
	if zone < 0 {
		return nil, fmt.Errorf("%w: %d", ErrZoneOutOfRange, zone)
	}

	t := &Topology{
		Zone:        zone,
		ExportNodes: map[int][]int{},
		ImportNodes: map[int][]int{},
	}

	seen := make(map[int]map[int]bool) // y -> set of foreign node ids already counted as an import

	for n := 0; n < g.N; n++ {
		if g.ZoneOf[n] != zone {
			continue
		}
		t.LocalNodes = append(t.LocalNodes, n)
		t.LocalEdgeCount += g.OutDegree(n) + 1 // +1 for the self-loop

		for _, m := range g.Neighbors(n) {
			y := g.ZoneOf[m]
			if y == zone {
				continue
			}
			if seen[y] == nil {
				seen[y] = map[int]bool{}
			}
			seen[y][m] = true
		}
	}

	for y, nodes := range seen {
		list := make([]int, 0, len(nodes))
		for m := range nodes {
			list = append(list, m)
		}
		sort.Ints(list)
		t.ImportNodes[y] = list
	}

	exportSeen := make(map[int]map[int]bool) // y -> set of local node ids already appended to export
	for _, n := range t.LocalNodes {
		for _, m := range g.Neighbors(n) {
			y := g.ZoneOf[m]
			if y == zone {
				continue
			}
			if exportSeen[y] == nil {
				exportSeen[y] = map[int]bool{}
			}
			if exportSeen[y][n] {
				continue
			}
			exportSeen[y][n] = true
			t.ExportNodes[y] = append(t.ExportNodes[y], n)
		}
	}

	return t, nil
}
