package director

import (
	"context"
	"fmt"
	"sync"

	"github.com/cuemby/burrow/pkg/log"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

const watcherBufferSize = 64

// Local is an in-process director: an in-memory region registry fed by
// region heartbeats, a store-stats registry, a monotonic ID allocator, and
// a per-store directive stream. It backs the standalone store mode and the
// test suite; a clustered deployment points the worker at a remote
// director instead.
type Local struct {
	clusterID string
	idAlloc   *atomic.Uint64
	logger    zerolog.Logger

	mu       sync.Mutex
	regions  map[uint64]*types.Region
	leaders  map[uint64]*types.Peer
	stores   map[uint64]*types.StoreStats
	watchers map[uint64]chan *HeartbeatResponse
}

// NewLocal creates an empty in-process director
func NewLocal() *Local {
	return &Local{
		clusterID: uuid.New().String(),
		idAlloc:   atomic.NewUint64(0),
		logger:    log.WithComponent("director"),
		regions:   make(map[uint64]*types.Region),
		leaders:   make(map[uint64]*types.Peer),
		stores:    make(map[uint64]*types.StoreStats),
		watchers:  make(map[uint64]chan *HeartbeatResponse),
	}
}

// ClusterID returns the director's cluster identity
func (d *Local) ClusterID() string {
	return d.clusterID
}

// AllocID allocates a cluster-unique ID
func (d *Local) AllocID() uint64 {
	return d.idAlloc.Inc()
}

// AskSplit allocates a region ID for the derived half of a split plus one
// peer ID per member
func (d *Local) AskSplit(ctx context.Context, region *types.Region) (*AskSplitResponse, error) {
	if region == nil || len(region.Peers) == 0 {
		return nil, fmt.Errorf("ask split: region has no peers")
	}

	resp := &AskSplitResponse{NewRegionID: d.AllocID()}
	for range region.Peers {
		resp.NewPeerIDs = append(resp.NewPeerIDs, d.AllocID())
	}

	d.logger.Info().
		Uint64("region_id", region.ID).
		Uint64("new_region_id", resp.NewRegionID).
		Msg("Authorized region split")
	return resp, nil
}

// RegionHeartbeat records the reported region and its leader
func (d *Local) RegionHeartbeat(ctx context.Context, region *types.Region, leader *types.Peer, stat *RegionStat) error {
	if region == nil || region.Epoch == nil {
		return fmt.Errorf("region heartbeat: missing region epoch")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if current, ok := d.regions[region.ID]; ok {
		if types.IsEpochStale(region.Epoch, current.Epoch) {
			return fmt.Errorf("region heartbeat: stale epoch for region %d", region.ID)
		}
	}
	d.regions[region.ID] = region.Clone()
	d.leaders[region.ID] = leader.Clone()
	return nil
}

// StoreHeartbeat records the reported store stats
func (d *Local) StoreHeartbeat(ctx context.Context, stats *types.StoreStats) error {
	if stats == nil {
		return fmt.Errorf("store heartbeat: missing stats")
	}

	d.mu.Lock()
	d.stores[stats.StoreID] = stats.Clone()
	d.mu.Unlock()
	return nil
}

// ReportSplit registers both halves of an applied split
func (d *Local) ReportSplit(ctx context.Context, left, right *types.Region) error {
	d.mu.Lock()
	d.regions[left.ID] = left.Clone()
	d.regions[right.ID] = right.Clone()
	d.mu.Unlock()

	d.logger.Info().
		Uint64("left_region_id", left.ID).
		Uint64("right_region_id", right.ID).
		Msg("Recorded region split")
	return nil
}

// GetRegionByID returns the registered region, or (nil, nil) when unknown
func (d *Local) GetRegionByID(ctx context.Context, regionID uint64) (*types.Region, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	region, ok := d.regions[regionID]
	if !ok {
		return nil, nil
	}
	return region.Clone(), nil
}

// GetStoreStats returns the last stats reported by storeID, or nil
func (d *Local) GetStoreStats(storeID uint64) *types.StoreStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stores[storeID].Clone()
}

// WatchHeartbeatResponses delivers pushed directives for storeID to handler
// until ctx is cancelled
func (d *Local) WatchHeartbeatResponses(ctx context.Context, storeID uint64, handler func(*HeartbeatResponse)) error {
	ch := make(chan *HeartbeatResponse, watcherBufferSize)

	d.mu.Lock()
	if _, ok := d.watchers[storeID]; ok {
		d.mu.Unlock()
		return fmt.Errorf("store %d already has a heartbeat response watcher", storeID)
	}
	d.watchers[storeID] = ch
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.watchers, storeID)
		d.mu.Unlock()
	}()

	for {
		select {
		case resp := <-ch:
			handler(resp)
		case <-ctx.Done():
			return nil
		}
	}
}

// PushHeartbeatResponse enqueues a directive onto storeID's response stream
func (d *Local) PushHeartbeatResponse(storeID uint64, resp *HeartbeatResponse) error {
	d.mu.Lock()
	ch, ok := d.watchers[storeID]
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("store %d has no heartbeat response watcher", storeID)
	}

	select {
	case ch <- resp:
		return nil
	default:
		return fmt.Errorf("heartbeat response stream for store %d is full", storeID)
	}
}
