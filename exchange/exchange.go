package exchange

import (
	"fmt"

	"github.com/gridzone/ratsim/simstate"
	"github.com/gridzone/ratsim/topology"
	"github.com/gridzone/ratsim/zonenet"
)

// RunE1 posts every zone's outgoing agent-migration records, applies
// every other zone's incoming records to state, then waits for the
// sends to land. outgoing[y] holds the records produced by this
// batch's local moves into zone y; zones with no boundary to the local
// zone are never contacted.
func RunE1(ep *zonenet.Endpoint, topo *topology.Topology, state *simstate.State, outgoing map[int][]AgentRecord) error {
	peers := topo.Peers()
	for _, y := range peers {
		ep.PostSend(zonenet.TagAgents, y, EncodeAgentRecords(outgoing[y]))
	}
	for _, y := range peers {
		payload, err := ep.Recv(zonenet.TagAgents, y)
		if err != nil {
			return err
		}
		records, err := DecodeAgentRecords(payload)
		if err != nil {
			return err
		}
		for _, rec := range records {
			state.Pos[rec.AgentID] = rec.NewNode
			state.Resident[rec.AgentID] = true
			state.Count[rec.NewNode]++
			state.Seed[rec.AgentID] = rec.Seed
		}
	}

	return ep.Wait()
}

// RunE2 publishes this zone's boundary node counts (Count[n] for every
// n in each peer's export list) and installs every peer's counts into
// the matching import-list positions.
func RunE2(ep *zonenet.Endpoint, topo *topology.Topology, state *simstate.State) error {
	peers := topo.Peers()
	for _, y := range peers {
		nodes := topo.ExportNodes[y]
		values := make([]int, len(nodes))
		for i, n := range nodes {
			values[i] = state.Count[n]
		}
		ep.PostSend(zonenet.TagCounts, y, EncodeCounts(values))
	}
	for _, y := range peers {
		payload, err := ep.Recv(zonenet.TagCounts, y)
		if err != nil {
			return err
		}
		values, err := DecodeCounts(payload)
		if err != nil {
			return err
		}
		importNodes := topo.ImportNodes[y]
		if len(values) != len(importNodes) {
			return fmt.Errorf("%w: zone %d from %d: got %d want %d", ErrLengthMismatch, topo.Zone, y, len(values), len(importNodes))
		}
		for i, n := range importNodes {
			state.Count[n] = values[i]
		}
	}

	return ep.Wait()
}

// RunE3 is RunE2's structural twin for floating-point node weights.
func RunE3(ep *zonenet.Endpoint, topo *topology.Topology, state *simstate.State) error {
	peers := topo.Peers()
	for _, y := range peers {
		nodes := topo.ExportNodes[y]
		values := make([]float64, len(nodes))
		for i, n := range nodes {
			values[i] = state.Weight[n]
		}
		ep.PostSend(zonenet.TagWeights, y, EncodeWeights(values))
	}
	for _, y := range peers {
		payload, err := ep.Recv(zonenet.TagWeights, y)
		if err != nil {
			return err
		}
		values, err := DecodeWeights(payload)
		if err != nil {
			return err
		}
		importNodes := topo.ImportNodes[y]
		if len(values) != len(importNodes) {
			return fmt.Errorf("%w: zone %d from %d: got %d want %d", ErrLengthMismatch, topo.Zone, y, len(values), len(importNodes))
		}
		for i, n := range importNodes {
			state.Weight[n] = values[i]
		}
	}

	return ep.Wait()
}
