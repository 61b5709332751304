package exchange_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridzone/ratsim/exchange"
	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/rng"
	"github.com/gridzone/ratsim/simstate"
	"github.com/gridzone/ratsim/topology"
	"github.com/gridzone/ratsim/zonenet"
)

// buildSplitPath builds 0-1-2-3 (undirected) split into zone 0 = {0,1},
// zone 1 = {2,3}, with the edge pair 1 -> 2 and 2 -> 1 the only
// boundary crossing.
func buildSplitPath(t *testing.T) *gridgraph.Graph {
	t.Helper()
	b, err := gridgraph.NewBuilder(4, 1, 6)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 0))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(2, 1))
	require.NoError(t, b.AddEdge(2, 3))
	require.NoError(t, b.AddEdge(3, 2))
	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.AssignZones([]int{0, 0, 1, 1}, 2))

	return g
}

func TestRunE2PropagatesBoundaryCounts(t *testing.T) {
	t.Parallel()

	g := buildSplitPath(t)
	t0, err := topology.Build(g, 0)
	require.NoError(t, err)
	t1, err := topology.Build(g, 1)
	require.NoError(t, err)

	s0 := simstate.New(0, g, 618, []int{0, 0, 2, 3})
	s1 := simstate.New(1, g, 618, []int{0, 0, 2, 3})
	s0.Count = []int{5, 9, 0, 0}
	s1.Count = []int{0, 0, 4, 2}

	fab := zonenet.NewFabric(2)
	ep0, ep1 := fab.Endpoint(0), fab.Endpoint(1)

	var wg sync.WaitGroup
	wg.Add(2)
	var err0, err1 error
	go func() { defer wg.Done(); err0 = exchange.RunE2(ep0, t0, s0) }()
	go func() { defer wg.Done(); err1 = exchange.RunE2(ep1, t1, s1) }()
	wg.Wait()

	require.NoError(t, err0)
	require.NoError(t, err1)
	assert.Equal(t, 4, s0.Count[2], "zone 0 should learn zone 1's count for imported node 2")
	assert.Equal(t, 9, s1.Count[1], "zone 1 should learn zone 0's count for imported node 1")
}

func TestRunE1MovesAgentAcrossZones(t *testing.T) {
	t.Parallel()

	g := buildSplitPath(t)
	t0, err := topology.Build(g, 0)
	require.NoError(t, err)
	t1, err := topology.Build(g, 1)
	require.NoError(t, err)

	s0 := simstate.New(0, g, 618, []int{1, 2})
	s1 := simstate.New(1, g, 618, []int{1, 2})

	outgoing0 := map[int][]exchange.AgentRecord{
		1: {{AgentID: 0, NewNode: 2, Seed: rng.Seed(999)}},
	}

	fab := zonenet.NewFabric(2)
	ep0, ep1 := fab.Endpoint(0), fab.Endpoint(1)

	var wg sync.WaitGroup
	wg.Add(2)
	var err0, err1 error
	go func() { defer wg.Done(); err0 = exchange.RunE1(ep0, t0, s0, outgoing0) }()
	go func() { defer wg.Done(); err1 = exchange.RunE1(ep1, t1, s1, nil) }()
	wg.Wait()

	require.NoError(t, err0)
	require.NoError(t, err1)
	assert.True(t, s1.Resident[0])
	assert.Equal(t, 2, s1.Pos[0])
	assert.Equal(t, rng.Seed(999), s1.Seed[0])
}

func TestRunE2LengthMismatchIsRejected(t *testing.T) {
	t.Parallel()

	g := buildSplitPath(t)
	t0, err := topology.Build(g, 0)
	require.NoError(t, err)

	// A bogus peer topology claiming two import nodes where only one was sent.
	bogus := &topology.Topology{
		Zone:        1,
		ImportNodes: map[int][]int{0: {1, 99}},
		ExportNodes: map[int][]int{0: {2}},
	}

	s0 := simstate.New(0, g, 618, []int{0, 1, 2, 3})
	s1 := simstate.New(1, g, 618, []int{0, 1, 2, 3})

	fab := zonenet.NewFabric(2)
	ep0, ep1 := fab.Endpoint(0), fab.Endpoint(1)

	var wg sync.WaitGroup
	wg.Add(2)
	var err0, err1 error
	go func() { defer wg.Done(); err0 = exchange.RunE2(ep0, t0, s0) }()
	go func() { defer wg.Done(); err1 = exchange.RunE2(ep1, bogus, s1) }()
	wg.Wait()

	assert.NoError(t, err0)
	assert.ErrorIs(t, err1, exchange.ErrLengthMismatch)
}
