package boot

import (
	"fmt"
	"io"

	"github.com/gridzone/ratsim/agentfile"
	"github.com/gridzone/ratsim/graphfile"
	"github.com/gridzone/ratsim/partition"
	"github.com/gridzone/ratsim/zonenet"
)

// Master parses the graph and agent files, partitions the grid into
// zoneCount zones, and publishes the resulting Payload on fab.Boot.
// Every zone, including the master's own, picks it up via Setup.
func Master(fab *zonenet.Fabric, gr io.Reader, rr io.Reader, zoneCount int, globalSeed uint32) error {
	parsed, err := graphfile.Parse(gr)
	if err != nil {
		return err
	}

	zoneOf, err := assignZones(parsed, zoneCount)
	if err != nil {
		return err
	}
	if err := parsed.Graph.AssignZones(zoneOf, zoneCount); err != nil {
		return err
	}

	agents, err := agentfile.Parse(rr, parsed.Graph.N)
	if err != nil {
		return err
	}

	fab.Boot.Publish(Payload{
		Graph:      parsed.Graph,
		GlobalSeed: globalSeed,
		InitialPos: agents.Positions,
	})

	return nil
}

// assignZones runs the partitioner over the parsed regions and expands
// the resulting per-region zone ids into a per-node zoneOf array.
func assignZones(parsed *graphfile.Parsed, zoneCount int) ([]int, error) {
	zoneOf := make([]int, parsed.Graph.N)

	if zoneCount == 1 {
		return zoneOf, nil
	}
	if len(parsed.Regions) == 0 {
		return nil, fmt.Errorf("%w", ErrRegionsRequired)
	}

	assigned, err := partition.AssignZones(parsed.Regions, zoneCount)
	if err != nil {
		return nil, err
	}
	for _, r := range assigned {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				zoneOf[parsed.Graph.NodeID(x, y)] = r.Zone
			}
		}
	}

	return zoneOf, nil
}
