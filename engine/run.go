package engine

import (
	"context"
	"io"
	"sync"

	"github.com/gridzone/ratsim/boot"
	"github.com/gridzone/ratsim/config"
	"github.com/gridzone/ratsim/instrument"
	"github.com/gridzone/ratsim/logging"
	"github.com/gridzone/ratsim/simulate"
	"github.com/gridzone/ratsim/zonenet"
	"go.opentelemetry.io/otel/trace"
)

// masterZone is fixed at zone 0, matching spec.md §5's rank-0
// convention for the master process and the C7 gather collector.
const masterZone = 0

// Run boots the partitioned graph and drives every zone's simulation
// concurrently to completion. Only the master zone's frames are
// written to out; every other zone discards its display output, since
// spec.md §6's per-step frames are a single global view assembled by
// the C7 gather step.
func Run(ctx context.Context, cfg *config.Config, log logging.Logger, tracer trace.Tracer, graph io.Reader, agents io.Reader, out io.Writer) error {
	fab := zonenet.NewFabric(cfg.ZoneCount)

	var wg sync.WaitGroup
	errs := make([]error, cfg.ZoneCount+1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := boot.Master(fab, graph, agents, cfg.ZoneCount, cfg.Seed); err != nil {
			errs[cfg.ZoneCount] = err
			fab.Fail(err)
		}
	}()

	for zone := 0; zone < cfg.ZoneCount; zone++ {
		wg.Add(1)
		go func(zone int) {
			defer wg.Done()
			if err := runZone(ctx, fab, cfg, log, tracer, zone, out); err != nil {
				errs[zone] = err
				fab.Fail(err)
			}
		}(zone)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func runZone(ctx context.Context, fab *zonenet.Fabric, cfg *config.Config, log logging.Logger, tracer trace.Tracer, zone int, out io.Writer) error {
	zoneLog := log.WithField("zone", zone)

	g, topo, state, err := boot.Setup(fab, zone)
	if err != nil {
		zoneLog.Error("setup failed: %v", err)

		return err
	}

	// Every zone must run the display-frame gather on the same
	// interval: gather.Collect/gather.Send are a collective, and a
	// non-master zone that skips it (because it has nothing to print)
	// leaves the master blocked in ep.Recv forever. Only Out and
	// ShowCounts differ by zone — those control what gets printed, not
	// whether the round happens.
	zoneOut := io.Writer(io.Discard)
	showCounts := false
	if zone == masterZone {
		zoneOut = out
		showCounts = !cfg.Quiet
	}

	tracker := instrument.New(cfg.Instrument, tracer, zoneLog.Warn)
	ep := fab.Endpoint(zone)
	driver := simulate.NewDriver(zone, cfg.ZoneCount, masterZone, g, topo, state, ep, tracker, zoneOut, showCounts, cfg.DisplayInterval)

	if err := driver.Run(ctx, cfg.Steps); err != nil {
		zoneLog.Error("run failed: %v", err)

		return err
	}

	if zone == masterZone && cfg.Instrument {
		report := tracker.Report()
		for name, d := range report.ByName {
			zoneLog.Info("activity %s: %s", name, d)
		}
	}

	return nil
}
