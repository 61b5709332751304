package zonenet_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridzone/ratsim/zonenet"
)

func TestBroadcastDeliversToAllWaiters(t *testing.T) {
	t.Parallel()

	b := zonenet.NewBroadcast()
	var wg sync.WaitGroup
	results := make([]any, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = b.Wait()
		}(i)
	}
	time.Sleep(10 * time.Millisecond)
	b.Publish(42)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 42, r)
	}
}

func TestEndpointPostSendRecvWait(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(2)
	ep0 := fab.Endpoint(0)
	ep1 := fab.Endpoint(1)

	ep0.PostSend(zonenet.TagCounts, 1, []byte("hello"))
	got, err := ep1.Recv(zonenet.TagCounts, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
	require.NoError(t, ep0.Wait())
}

func TestEndpointMutualSendDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(2)
	ep0 := fab.Endpoint(0)
	ep1 := fab.Endpoint(1)

	ep0.PostSend(zonenet.TagAgents, 1, []byte("from0"))
	ep1.PostSend(zonenet.TagAgents, 0, []byte("from1"))

	got0, err := ep0.Recv(zonenet.TagAgents, 1)
	require.NoError(t, err)
	got1, err := ep1.Recv(zonenet.TagAgents, 0)
	require.NoError(t, err)

	assert.Equal(t, []byte("from1"), got0)
	assert.Equal(t, []byte("from0"), got1)
	require.NoError(t, ep0.Wait())
	require.NoError(t, ep1.Wait())
}

func TestEndpointWaitWithNoPostedSendsReturnsImmediately(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(3)
	ep := fab.Endpoint(0)
	require.NoError(t, ep.Wait())
}

func TestFabricFailUnblocksRecv(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(2)
	ep1 := fab.Endpoint(1)

	done := make(chan error, 1)
	go func() {
		_, err := ep1.Recv(zonenet.TagCounts, 0)
		done <- err
	}()

	fab.Fail(zonenet.ErrPeerLost)
	err := <-done
	assert.ErrorIs(t, err, zonenet.ErrPeerLost)
}
