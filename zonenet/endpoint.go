package zonenet

// Endpoint is one zone's handle onto the Fabric. PostSend is
// non-blocking (the actual channel send happens on its own goroutine);
// Recv blocks for a specific peer and tag; Wait blocks until every
// send posted since the last Wait has been accepted by its receiver.
// Callers must post every send for a round before issuing any Recv,
// matching the batch protocol's "post all sends, then receive, then
// wait" ordering.
type Endpoint struct {
	zone   int
	fab    *Fabric
	posted []chan struct{}
}

// Zone returns the endpoint's own zone id.
func (e *Endpoint) Zone() int { return e.zone }

// PostSend queues payload for delivery to peer under tag. It returns
// immediately; the data lands on peer's matching Recv once that peer
// calls it.
func (e *Endpoint) PostSend(tag Tag, peer int, payload []byte) {
	ch := e.fab.channel(tag, e.zone, peer)
	done := make(chan struct{})
	go func() {
		select {
		case ch <- payload:
		case <-e.fab.failed:
		}
		close(done)
	}()
	e.posted = append(e.posted, done)
}

// Recv blocks until a payload from peer under tag arrives, or the
// fabric is marked failed.
func (e *Endpoint) Recv(tag Tag, peer int) ([]byte, error) {
	ch := e.fab.channel(tag, peer, e.zone)
	select {
	case payload := <-ch:
		return payload, nil
	case <-e.fab.failed:
		return nil, e.fab.failErr
	}
}

// Wait blocks until every send posted since the last Wait has been
// accepted by its receiver, then clears the posted list.
func (e *Endpoint) Wait() error {
	for _, done := range e.posted {
		select {
		case <-done:
		case <-e.fab.failed:
			e.posted = nil
			return e.fab.failErr
		}
	}
	e.posted = nil

	return nil
}
