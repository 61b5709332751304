package exchange

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gridzone/ratsim/rng"
)

// AgentRecord is the packed triple an E1 payload carries for one agent
// that migrated into the receiving zone this batch.
type AgentRecord struct {
	AgentID int
	NewNode int
	Seed    rng.Seed
}

const agentRecordSize = 12 // 3 x uint32

// EncodeAgentRecords packs records into an E1 wire payload. A nil or
// empty slice encodes to an empty payload, which Decode reads back as
// zero records — the "empty exchange payload" boundary case.
func EncodeAgentRecords(records []AgentRecord) []byte {
	buf := make([]byte, len(records)*agentRecordSize)
	for i, rec := range records {
		off := i * agentRecordSize
		binary.LittleEndian.PutUint32(buf[off:], uint32(rec.AgentID))
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(rec.NewNode))
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(rec.Seed))
	}

	return buf
}

// DecodeAgentRecords is EncodeAgentRecords' inverse. The receiver
// infers the record count from the payload length, per spec §4.5.
func DecodeAgentRecords(payload []byte) ([]AgentRecord, error) {
	if len(payload)%agentRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedAgentPayload, len(payload))
	}
	n := len(payload) / agentRecordSize
	records := make([]AgentRecord, n)
	for i := 0; i < n; i++ {
		off := i * agentRecordSize
		records[i] = AgentRecord{
			AgentID: int(binary.LittleEndian.Uint32(payload[off:])),
			NewNode: int(binary.LittleEndian.Uint32(payload[off+4:])),
			Seed:    rng.Seed(binary.LittleEndian.Uint32(payload[off+8:])),
		}
	}

	return records, nil
}

const intValueSize = 4

// EncodeCounts packs an E2 boundary-count payload.
func EncodeCounts(values []int) []byte {
	buf := make([]byte, len(values)*intValueSize)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*intValueSize:], uint32(v))
	}

	return buf
}

// DecodeCounts is EncodeCounts' inverse.
func DecodeCounts(payload []byte) ([]int, error) {
	if len(payload)%intValueSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedValuePayload, len(payload))
	}
	n := len(payload) / intValueSize
	values := make([]int, n)
	for i := 0; i < n; i++ {
		values[i] = int(int32(binary.LittleEndian.Uint32(payload[i*intValueSize:])))
	}

	return values, nil
}

const floatValueSize = 8

// EncodeWeights packs an E3 boundary-weight payload.
func EncodeWeights(values []float64) []byte {
	buf := make([]byte, len(values)*floatValueSize)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*floatValueSize:], math.Float64bits(v))
	}

	return buf
}

// DecodeWeights is EncodeWeights' inverse.
func DecodeWeights(payload []byte) ([]float64, error) {
	if len(payload)%floatValueSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedValuePayload, len(payload))
	}
	n := len(payload) / floatValueSize
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*floatValueSize:]))
	}

	return values, nil
}
