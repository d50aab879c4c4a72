package director

import (
	"context"
	"testing"
	"time"

	"github.com/cuemby/burrow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegion(id uint64, confVer, version uint64, peerIDs ...uint64) *types.Region {
	region := &types.Region{
		ID:    id,
		Epoch: &types.RegionEpoch{ConfVer: confVer, Version: version},
	}
	for _, pid := range peerIDs {
		region.Peers = append(region.Peers, &types.Peer{ID: pid, StoreID: pid * 10})
	}
	return region
}

// TestLocalAskSplit tests ID allocation for a split
func TestLocalAskSplit(t *testing.T) {
	d := NewLocal()
	region := testRegion(1, 1, 1, 101, 102, 103)

	resp, err := d.AskSplit(context.Background(), region)
	require.NoError(t, err)

	assert.NotZero(t, resp.NewRegionID)
	assert.Len(t, resp.NewPeerIDs, 3)

	seen := map[uint64]bool{resp.NewRegionID: true}
	for _, id := range resp.NewPeerIDs {
		assert.False(t, seen[id], "allocated IDs must be unique")
		seen[id] = true
	}

	// A region without members cannot split
	_, err = d.AskSplit(context.Background(), &types.Region{ID: 2})
	assert.Error(t, err)
}

// TestLocalRegionRegistry tests heartbeat-fed region lookup
func TestLocalRegionRegistry(t *testing.T) {
	d := NewLocal()

	got, err := d.GetRegionByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, got, "unregistered region resolves to nil, nil")

	region := testRegion(7, 1, 1, 101, 102)
	leader := region.Peers[0]
	require.NoError(t, d.RegionHeartbeat(context.Background(), region, leader, &RegionStat{}))

	got, err = d.GetRegionByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, region, got)

	// A heartbeat with a stale epoch must not regress the registry
	stale := testRegion(7, 1, 0, 101, 102)
	assert.Error(t, d.RegionHeartbeat(context.Background(), stale, leader, &RegionStat{}))

	got, err = d.GetRegionByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Epoch.Version)
}

// TestLocalStoreHeartbeat tests store stats registration
func TestLocalStoreHeartbeat(t *testing.T) {
	d := NewLocal()
	stats := &types.StoreStats{StoreID: 4, Capacity: 100, Available: 60, UsedSize: 40}

	require.NoError(t, d.StoreHeartbeat(context.Background(), stats))
	assert.Equal(t, stats, d.GetStoreStats(4))
	assert.Nil(t, d.GetStoreStats(5))
}

// TestLocalReportSplit tests that both halves become resolvable
func TestLocalReportSplit(t *testing.T) {
	d := NewLocal()
	left := testRegion(1, 1, 2, 101)
	right := testRegion(9, 1, 2, 201)

	require.NoError(t, d.ReportSplit(context.Background(), left, right))

	got, err := d.GetRegionByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, right, got)
}

// TestLocalWatchHeartbeatResponses tests directive push and clean shutdown
func TestLocalWatchHeartbeatResponses(t *testing.T) {
	d := NewLocal()
	ctx, cancel := context.WithCancel(context.Background())

	received := make(chan *HeartbeatResponse, 1)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- d.WatchHeartbeatResponses(ctx, 1, func(resp *HeartbeatResponse) {
			received <- resp
		})
	}()

	// Wait for the watcher to register
	require.Eventually(t, func() bool {
		return d.PushHeartbeatResponse(1, &HeartbeatResponse{RegionID: 3}) == nil
	}, time.Second, 10*time.Millisecond)

	select {
	case resp := <-received:
		assert.Equal(t, uint64(3), resp.RegionID)
	case <-time.After(time.Second):
		t.Fatal("directive was not delivered")
	}

	cancel()
	select {
	case err := <-watchErr:
		assert.NoError(t, err, "cancellation is a clean exit")
	case <-time.After(time.Second):
		t.Fatal("watcher did not exit on cancellation")
	}

	// Stream gone after the watcher exits
	assert.Error(t, d.PushHeartbeatResponse(1, &HeartbeatResponse{}))
}

// TestLocalAllocID tests allocator monotonicity
func TestLocalAllocID(t *testing.T) {
	d := NewLocal()
	a := d.AllocID()
	b := d.AllocID()
	assert.Greater(t, b, a)
}
