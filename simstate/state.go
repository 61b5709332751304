package simstate

import (
	"math"

	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/rng"
)

// New builds a zone's simulation state from the broadcast graph and
// initial agent positions. globalSeed and each agent's id derive that
// agent's starting RNG seed via rng.Reseed, per spec §4.1; an agent is
// resident in zone iff its initial node belongs to zone.
func New(zone int, g *gridgraph.Graph, globalSeed uint32, initialPos []int) *State {
	r := len(initialPos)
	n := g.N

	s := &State{
		Zone:       zone,
		R:          r,
		N:          n,
		Pos:        append([]int(nil), initialPos...),
		Resident:   make([]bool, r),
		Seed:       make([]rng.Seed, r),
		Count:      make([]int, n),
		Weight:     make([]float64, n),
		SumWeight:  make([]float64, n),
		CumWeight:  make([]float64, len(g.Adj)),
		LoadFactor: float64(r) / float64(n),
	}
	s.BatchSize = batchSize(r)

	for agentID, pos := range initialPos {
		s.Seed[agentID] = rng.Reseed(globalSeed, uint32(agentID))
		s.Resident[agentID] = g.ZoneOf[pos] == zone
	}

	return s
}

func batchSize(r int) int {
	byFraction := int(math.Floor(0.02 * float64(r)))
	bySqrt := int(math.Floor(math.Sqrt(float64(r))))
	if byFraction > bySqrt {
		return byFraction
	}

	return bySqrt
}

// Census recomputes Count for every node from a full, globally known
// position list. It is used once at setup, when every zone has been
// broadcast all agent positions (spec §9's step-0 assumption) — not
// during the steady-state batch loop, where each zone only knows
// positions for nodes in its own authority domain.
func (s *State) Census(fullPos []int) {
	for n := range s.Count {
		s.Count[n] = 0
	}
	for _, p := range fullPos {
		s.Count[p]++
	}
}

// ComputeWeights recomputes Weight for exactly the given nodes, per
// the ILF/weight kernels in rng, using the currently authoritative
// Count values for each node and its neighbors.
func (s *State) ComputeWeights(g *gridgraph.Graph, nodes []int) {
	for _, n := range nodes {
		neighbors := g.Neighbors(n)
		neighborCounts := make([]int, len(neighbors))
		for i, m := range neighbors {
			neighborCounts[i] = s.Count[m]
		}
		ilf := rng.ILF(s.Count[n], neighborCounts)
		s.Weight[n] = rng.Weight(s.Count[n], s.LoadFactor, ilf)
	}
}

// RecomputeSumCum rebuilds SumWeight and CumWeight for exactly the
// given nodes (the local_nodes set) from the current Weight values,
// per the batch step's step 1.
func (s *State) RecomputeSumCum(g *gridgraph.Graph, localNodes []int) {
	for _, n := range localNodes {
		run := g.AdjRun(n)
		weights := make([]float64, len(run))
		for i, m := range run {
			weights[i] = s.Weight[m]
		}
		start := g.AdjStart[n]
		total := rng.CumulativeWeights(s.CumWeight[start:start+len(run)], weights)
		s.SumWeight[n] = total
	}
}

// SelectMove draws the weighted-random next node for agent r from its
// current node's precomputed cumulative weights.
func (s *State) SelectMove(g *gridgraph.Graph, agentID int) (int, error) {
	n := s.Pos[agentID]
	start, end := g.AdjStart[n], g.AdjStart[n+1]
	idx, err := rng.SelectBucket(&s.Seed[agentID], s.CumWeight[start:end])
	if err != nil {
		return 0, err
	}

	return g.AdjRun(n)[idx], nil
}
