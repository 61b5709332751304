package gather

import (
	"encoding/binary"
	"fmt"

	"github.com/gridzone/ratsim/simstate"
	"github.com/gridzone/ratsim/zonenet"
)

const pairSize = 8 // node id + count, 4 bytes each

func encodePairs(nodes []int, counts []int) []byte {
	buf := make([]byte, len(nodes)*pairSize)
	for i, n := range nodes {
		off := i * pairSize
		binary.LittleEndian.PutUint32(buf[off:], uint32(n))
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(counts[i]))
	}

	return buf
}

func decodePairs(payload []byte) (nodes []int, counts []int, err error) {
	if len(payload)%pairSize != 0 {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrMalformedPayload, len(payload))
	}
	n := len(payload) / pairSize
	nodes = make([]int, n)
	counts = make([]int, n)
	for i := 0; i < n; i++ {
		off := i * pairSize
		nodes[i] = int(binary.LittleEndian.Uint32(payload[off:]))
		counts[i] = int(binary.LittleEndian.Uint32(payload[off+4:]))
	}

	return nodes, counts, nil
}

// Send is the non-master side of a gather: it ships (node, count)
// pairs for every node this zone owns to the master, and waits for the
// send to land.
func Send(ep *zonenet.Endpoint, masterZone int, localNodes []int, state *simstate.State) error {
	counts := make([]int, len(localNodes))
	for i, n := range localNodes {
		counts[i] = state.Count[n]
	}
	ep.PostSend(zonenet.TagGather, masterZone, encodePairs(localNodes, counts))

	return ep.Wait()
}

// Collect is the master side of a gather: it receives every other
// zone's (node, count) pairs and overwrites the matching slots in its
// own Count array, leaving its own local nodes untouched.
func Collect(ep *zonenet.Endpoint, zoneCount int, masterZone int, state *simstate.State) error {
	for y := 0; y < zoneCount; y++ {
		if y == masterZone {
			continue
		}
		payload, err := ep.Recv(zonenet.TagGather, y)
		if err != nil {
			return err
		}
		nodes, counts, err := decodePairs(payload)
		if err != nil {
			return err
		}
		for i, n := range nodes {
			state.Count[n] = counts[i]
		}
	}

	return nil
}
