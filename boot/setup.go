package boot

import (
	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/simstate"
	"github.com/gridzone/ratsim/topology"
	"github.com/gridzone/ratsim/zonenet"
)

// Setup waits for the master's broadcast and builds the local zone's
// topology and simulation state from it. Every zone, including the
// master, calls this once at startup.
func Setup(fab *zonenet.Fabric, zone int) (*gridgraph.Graph, *topology.Topology, *simstate.State, error) {
	v, err := fab.WaitBoot()
	if err != nil {
		return nil, nil, nil, err
	}
	payload := v.(Payload)

	topo, err := topology.Build(payload.Graph, zone)
	if err != nil {
		return nil, nil, nil, err
	}

	state := simstate.New(zone, payload.Graph, payload.GlobalSeed, payload.InitialPos)
	state.Census(payload.InitialPos)

	return payload.Graph, topo, state, nil
}
