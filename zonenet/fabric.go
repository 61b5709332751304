package zonenet

import "sync"

type chanKey struct {
	tag      Tag
	from, to int
}

// Fabric wires the per-zone channels for a run of zoneCount zones and
// owns the single boot-time Broadcast. It is built once by engine.Run
// and shared read-only by every zone goroutine thereafter.
type Fabric struct {
	zoneCount int
	chans     map[chanKey]chan []byte
	Boot      *Broadcast

	failOnce sync.Once
	failed   chan struct{}
	failErr  error
}

// NewFabric allocates a channel for every (tag, ordered zone pair) so
// that E1/E2/E3/gather traffic between any two zones is isolated on
// its own channel.
func NewFabric(zoneCount int) *Fabric {
	f := &Fabric{
		zoneCount: zoneCount,
		chans:     make(map[chanKey]chan []byte),
		Boot:      NewBroadcast(),
		failed:    make(chan struct{}),
	}
	for tag := Tag(0); tag < tagCount; tag++ {
		for from := 0; from < zoneCount; from++ {
			for to := 0; to < zoneCount; to++ {
				if from == to {
					continue
				}
				f.chans[chanKey{tag, from, to}] = make(chan []byte)
			}
		}
	}

	return f
}

// Endpoint returns the zone's view of the fabric.
func (f *Fabric) Endpoint(zone int) *Endpoint {
	return &Endpoint{zone: zone, fab: f}
}

// WaitBoot blocks until the master publishes the boot payload on
// f.Boot, or returns the fabric's failure error if the master aborts
// before publishing — e.g. a malformed graph or agent file — so every
// zone waiting in boot.Setup unblocks and reports the error instead of
// hanging forever on a broadcast that is never coming.
func (f *Fabric) WaitBoot() (any, error) {
	select {
	case <-f.Boot.ready:
		return f.Boot.value, nil
	case <-f.failed:
		return nil, f.failErr
	}
}

// Fail marks the run as aborted; every Endpoint's Recv and Wait (and
// WaitBoot) observes it and returns err instead of blocking forever on
// a peer that is never coming back. Only the first call's err is kept.
func (f *Fabric) Fail(err error) {
	f.failOnce.Do(func() {
		f.failErr = err
		close(f.failed)
	})
}

func (f *Fabric) channel(tag Tag, from, to int) chan []byte {
	return f.chans[chanKey{tag, from, to}]
}
