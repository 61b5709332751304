package zonenet

import "sync"

// Broadcast is a one-shot collective: exactly one zone (the master)
// publishes a value and every zone, including the master, reads it
// back with Wait. It is the Go-channel analogue of an MPI_Bcast used
// once during boot to distribute the graph, the zone assignment, and
// the initial agent positions.
type Broadcast struct {
	once  sync.Once
	ready chan struct{}
	value any
}

// NewBroadcast returns an unpublished Broadcast.
func NewBroadcast() *Broadcast {
	return &Broadcast{ready: make(chan struct{})}
}

// Publish makes v available to every Wait call. Only the first call
// has an effect; later calls are ignored, since a collective broadcast
// has exactly one source.
func (b *Broadcast) Publish(v any) {
	b.once.Do(func() {
		b.value = v
		close(b.ready)
	})
}

// Wait blocks until Publish has been called and returns the published
// value.
func (b *Broadcast) Wait() any {
	<-b.ready

	return b.value
}
