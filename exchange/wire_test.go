package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridzone/ratsim/exchange"
	"github.com/gridzone/ratsim/rng"
)

func TestAgentRecordRoundTrip(t *testing.T) {
	t.Parallel()

	records := []exchange.AgentRecord{
		{AgentID: 3, NewNode: 7, Seed: rng.Seed(12345)},
		{AgentID: 9, NewNode: 1, Seed: rng.Seed(0)},
	}
	payload := exchange.EncodeAgentRecords(records)
	decoded, err := exchange.DecodeAgentRecords(payload)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestEmptyAgentPayloadDecodesToNoRecords(t *testing.T) {
	t.Parallel()

	decoded, err := exchange.DecodeAgentRecords(exchange.EncodeAgentRecords(nil))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestMalformedAgentPayloadRejected(t *testing.T) {
	t.Parallel()

	_, err := exchange.DecodeAgentRecords([]byte{1, 2, 3})
	assert.ErrorIs(t, err, exchange.ErrMalformedAgentPayload)
}

func TestCountsRoundTrip(t *testing.T) {
	t.Parallel()

	values := []int{5, 0, 100, -3}
	decoded, err := exchange.DecodeCounts(exchange.EncodeCounts(values))
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestWeightsRoundTrip(t *testing.T) {
	t.Parallel()

	values := []float64{1.5, 0.0, 2.25, 0.999999}
	decoded, err := exchange.DecodeWeights(exchange.EncodeWeights(values))
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}
