package boot_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridzone/ratsim/boot"
	"github.com/gridzone/ratsim/zonenet"
)

const twoZoneGraph = `4 1 3 2
n 1.0
n 1.0
n 1.0
n 1.0
e 0 1
e 1 2
e 2 3
r 0 0 2 1
r 2 0 2 1
`

const fourAgents = `4 4
0
1
2
3
`

func TestMasterAndSetupSingleZone(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(1)
	require.NoError(t, boot.Master(fab, strings.NewReader("2 1 1\nn 1\nn 1\ne 0 1\n"), strings.NewReader("2 3\n0\n0\n1\n"), 1, 618))

	g, topo, state, err := boot.Setup(fab, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, g.N)
	assert.Equal(t, []int{0, 1}, topo.LocalNodes)
	assert.Equal(t, 3, state.R)
}

func TestMasterAndSetupTwoZones(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(2)

	var wg sync.WaitGroup
	wg.Add(2)
	var err0, err1 error

	go func() {
		defer wg.Done()
		err0 = boot.Master(fab, strings.NewReader(twoZoneGraph), strings.NewReader(fourAgents), 2, 618)
	}()

	var topo1Len int
	go func() {
		defer wg.Done()
		_, topo, state, err := boot.Setup(fab, 1)
		if err != nil {
			err1 = err

			return
		}
		topo1Len = len(topo.LocalNodes)
		_ = state
	}()

	wg.Wait()
	require.NoError(t, err0)
	require.NoError(t, err1)
	assert.Equal(t, 2, topo1Len)

	_, topo0, state0m, err := boot.Setup(fab, 0)
	require.NoError(t, err)
	assert.Len(t, topo0.LocalNodes, 2)
	assert.Equal(t, 4, state0m.R)
}

func TestMasterRejectsMissingRegionsForMultiZone(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(2)
	err := boot.Master(fab, strings.NewReader("2 1 1\nn 1\nn 1\ne 0 1\n"), strings.NewReader("2 1\n0\n"), 2, 618)
	assert.ErrorIs(t, err, boot.ErrRegionsRequired)
}

// TestSetupUnblocksWhenMasterFailsBeforePublishing guards against the
// boot broadcast hanging forever when the master never reaches
// fab.Boot.Publish (e.g. a malformed input file): every zone waiting
// in Setup must observe the fabric's failure and return an error
// rather than block, per spec.md §7's "exit non-zero" contract.
func TestSetupUnblocksWhenMasterFailsBeforePublishing(t *testing.T) {
	t.Parallel()

	fab := zonenet.NewFabric(2)

	done := make(chan error, 1)
	go func() {
		_, _, _, err := boot.Setup(fab, 1)
		done <- err
	}()

	err := boot.Master(fab, strings.NewReader("2 1 1\nn 1\nn 1\ne 0 1\n"), strings.NewReader("2 1\n0\n"), 2, 618)
	require.ErrorIs(t, err, boot.ErrRegionsRequired)
	fab.Fail(err)

	select {
	case setupErr := <-done:
		assert.ErrorIs(t, setupErr, boot.ErrRegionsRequired)
	case <-time.After(time.Second):
		t.Fatal("Setup did not unblock after master failure")
	}
}
