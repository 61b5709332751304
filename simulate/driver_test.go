package simulate_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/instrument"
	"github.com/gridzone/ratsim/simstate"
	"github.com/gridzone/ratsim/simulate"
	"github.com/gridzone/ratsim/topology"
	"github.com/gridzone/ratsim/zonenet"
)

func build2x1Single(t *testing.T) *gridgraph.Graph {
	t.Helper()
	b, err := gridgraph.NewBuilder(2, 1, 2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 0))
	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.AssignZones([]int{0, 0}, 1))

	return g
}

// TestSingleZoneConservesAgents exercises scenario S1's setup: a 2x1
// grid, one zone, R=10 agents starting at node 0, seed 618. Conservation
// of agents must hold regardless of the batch loop's random draws.
func TestSingleZoneConservesAgents(t *testing.T) {
	t.Parallel()

	g := build2x1Single(t)
	r := 10
	initialPos := make([]int, r)
	state := simstate.New(0, g, 618, initialPos)
	state.Census(initialPos)

	topo, err := topology.Build(g, 0)
	require.NoError(t, err)

	fab := zonenet.NewFabric(1)
	ep := fab.Endpoint(0)
	tracker := instrument.New(false, noop.NewTracerProvider().Tracer("test"), func(string, ...any) {})

	var out bytes.Buffer
	driver := simulate.NewDriver(0, 1, 0, g, topo, state, ep, tracker, &out, true, 1)

	require.NoError(t, driver.Run(context.Background(), 50))

	total := 0
	for _, c := range state.Count {
		total += c
	}
	assert.Equal(t, r, total)

	residentCount := 0
	for _, resident := range state.Resident {
		if resident {
			residentCount++
		}
	}
	assert.Equal(t, r, residentCount)

	assert.Contains(t, out.String(), "DONE")
}

func TestZeroAgentRunProducesEmptyFrames(t *testing.T) {
	t.Parallel()

	b, err := gridgraph.NewBuilder(4, 4, 0)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.AssignZones(make([]int, 16), 1))

	state := simstate.New(0, g, 618, nil)
	state.Census(nil)
	topo, err := topology.Build(g, 0)
	require.NoError(t, err)

	fab := zonenet.NewFabric(1)
	ep := fab.Endpoint(0)
	tracker := instrument.New(false, noop.NewTracerProvider().Tracer("test"), func(string, ...any) {})

	var out bytes.Buffer
	driver := simulate.NewDriver(0, 1, 0, g, topo, state, ep, tracker, &out, true, 1)
	require.NoError(t, driver.Run(context.Background(), 2))

	assert.Contains(t, out.String(), "STEP 4 4 0")
	assert.Contains(t, out.String(), "END")
	assert.Contains(t, out.String(), "DONE")
}
