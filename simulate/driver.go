package simulate

import (
	"context"
	"io"

	"github.com/gridzone/ratsim/display"
	"github.com/gridzone/ratsim/exchange"
	"github.com/gridzone/ratsim/gather"
	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/instrument"
	"github.com/gridzone/ratsim/simstate"
	"github.com/gridzone/ratsim/topology"
	"github.com/gridzone/ratsim/zonenet"
)

// Driver runs one zone's side of the simulation.
type Driver struct {
	Zone       int
	ZoneCount  int
	MasterZone int

	Graph *gridgraph.Graph
	Topo  *topology.Topology
	State *simstate.State
	EP    *zonenet.Endpoint

	Tracker *instrument.Tracker

	// Out is where display frames and the final DONE line are written.
	// Only the master zone's Out is expected to be non-discarding.
	Out             io.Writer
	ShowCounts      bool
	DisplayInterval int

	importUnion []int
}

// NewDriver wires a Driver and precomputes the union of every foreign
// node this zone imports, since weight recomputation after E1/E2 needs
// it on every batch.
func NewDriver(zone, zoneCount, masterZone int, g *gridgraph.Graph, topo *topology.Topology, state *simstate.State, ep *zonenet.Endpoint, tracker *instrument.Tracker, out io.Writer, showCounts bool, displayInterval int) *Driver {
	seen := map[int]bool{}
	var union []int
	for _, nodes := range topo.ImportNodes {
		for _, n := range nodes {
			if !seen[n] {
				seen[n] = true
				union = append(union, n)
			}
		}
	}

	return &Driver{
		Zone:            zone,
		ZoneCount:       zoneCount,
		MasterZone:      masterZone,
		Graph:           g,
		Topo:            topo,
		State:           state,
		EP:              ep,
		Tracker:         tracker,
		Out:             out,
		ShowCounts:      showCounts,
		DisplayInterval: displayInterval,
		importUnion:     union,
	}
}

// Run drives the full lifecycle: compute_all_weights, an optional
// step-0 frame, then steps batch-loop iterations with a display frame
// every DisplayInterval steps, and a final DONE line.
func (d *Driver) Run(ctx context.Context, steps int) error {
	ctx = d.Tracker.Start(ctx, instrument.ActivityComputeWeights)
	allNodes := make([]int, d.Graph.N)
	for n := range allNodes {
		allNodes[n] = n
	}
	d.State.ComputeWeights(d.Graph, allNodes)
	d.Tracker.Finish(instrument.ActivityComputeWeights)

	if d.DisplayInterval > 0 {
		if err := d.emitFrame(); err != nil {
			return err
		}
	}

	for step := 1; step <= steps; step++ {
		if err := d.batchStep(ctx); err != nil {
			return err
		}
		if d.DisplayInterval > 0 && step%d.DisplayInterval == 0 {
			if err := d.emitFrame(); err != nil {
				return err
			}
		}
	}

	if d.Zone == d.MasterZone {
		return display.EmitDone(d.Out)
	}

	return nil
}

// batchStep walks every agent id in slices of State.BatchSize, per
// spec §4.6's "batch_step walks agent id space in contiguous slices".
func (d *Driver) batchStep(ctx context.Context) error {
	size := d.State.BatchSize
	if size <= 0 {
		size = d.State.R
	}
	for start := 0; start < d.State.R; start += size {
		end := start + size
		if end > d.State.R {
			end = d.State.R
		}
		if err := d.runBatch(ctx, start, end); err != nil {
			return err
		}
	}

	return nil
}

func (d *Driver) runBatch(ctx context.Context, start, end int) error {
	d.Tracker.Start(ctx, instrument.ActivityComputeSums)
	d.State.RecomputeSumCum(d.Graph, d.Topo.LocalNodes)
	d.Tracker.Finish(instrument.ActivityComputeSums)

	outgoing := make(map[int][]exchange.AgentRecord)

	d.Tracker.Start(ctx, instrument.ActivityFindMoves)
	for r := start; r < end; r++ {
		if !d.State.Resident[r] {
			continue
		}
		oldPos := d.State.Pos[r]
		v, err := d.State.SelectMove(d.Graph, r)
		if err != nil {
			d.Tracker.Finish(instrument.ActivityFindMoves)

			return err
		}
		newZone := d.Graph.ZoneOf[v]
		if newZone == d.Zone {
			d.State.Pos[r] = v
			d.State.Count[oldPos]--
			d.State.Count[v]++

			continue
		}
		d.State.Count[oldPos]--
		d.State.Resident[r] = false
		outgoing[newZone] = append(outgoing[newZone], exchange.AgentRecord{
			AgentID: r,
			NewNode: v,
			Seed:    d.State.Seed[r],
		})
	}
	d.Tracker.Finish(instrument.ActivityFindMoves)

	d.Tracker.Start(ctx, instrument.ActivityLocalComm)
	if err := exchange.RunE1(d.EP, d.Topo, d.State, outgoing); err != nil {
		d.Tracker.Finish(instrument.ActivityLocalComm)

		return err
	}
	if err := exchange.RunE2(d.EP, d.Topo, d.State); err != nil {
		d.Tracker.Finish(instrument.ActivityLocalComm)

		return err
	}
	d.Tracker.Finish(instrument.ActivityLocalComm)

	d.Tracker.Start(ctx, instrument.ActivityComputeWeights)
	nodes := append(append([]int(nil), d.Topo.LocalNodes...), d.importUnion...)
	d.State.ComputeWeights(d.Graph, nodes)
	d.Tracker.Finish(instrument.ActivityComputeWeights)

	d.Tracker.Start(ctx, instrument.ActivityLocalComm)
	defer d.Tracker.Finish(instrument.ActivityLocalComm)

	return exchange.RunE3(d.EP, d.Topo, d.State)
}

func (d *Driver) emitFrame() error {
	d.Tracker.Start(context.Background(), instrument.ActivityGlobalComm)
	defer d.Tracker.Finish(instrument.ActivityGlobalComm)

	if d.Zone == d.MasterZone {
		if err := gather.Collect(d.EP, d.ZoneCount, d.MasterZone, d.State); err != nil {
			return err
		}

		return display.EmitFrame(d.Out, d.Graph.Width, d.Graph.Height, d.State.R, d.State.Count, d.ShowCounts)
	}

	return gather.Send(d.EP, d.MasterZone, d.Topo.LocalNodes, d.State)
}
