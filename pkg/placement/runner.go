package placement

import (
	"context"
	"fmt"

	"github.com/cuemby/burrow/pkg/command"
	"github.com/cuemby/burrow/pkg/director"
	"github.com/cuemby/burrow/pkg/engine"
	"github.com/cuemby/burrow/pkg/log"
	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/disk"
)

// diskUsageFunc probes the filesystem containing path for total and free
// bytes. The default implementation is gopsutil's statvfs wrapper; tests
// substitute their own.
type diskUsageFunc func(path string) (*disk.UsageStat, error)

// Runner executes placement tasks. It owns the director client handle, the
// outbound command sender and the engine reference; every task's director
// call runs on its own goroutine so the driver never stalls behind the
// network. The engine and filesystem probes run on the driver goroutine.
//
// Runner is driven from a single Worker goroutine; its mutable state (the
// watcher gate) needs no synchronization.
type Runner struct {
	storeID   uint64
	director  director.Client
	sender    command.Sender
	engine    engine.Engine
	diskUsage diskUsageFunc

	hbWatcherStarted bool

	logger zerolog.Logger
}

// NewRunner creates a runner for the given store
func NewRunner(storeID uint64, client director.Client, sender command.Sender, eng engine.Engine) *Runner {
	return &Runner{
		storeID:   storeID,
		director:  client,
		sender:    sender,
		engine:    eng,
		diskUsage: disk.Usage,
		logger:    log.WithComponent("placement"),
	}
}

// Run dispatches one task. The first dispatch also starts the heartbeat
// response watcher; the gate is flipped before this call returns, so the
// watcher starts exactly once per runner lifetime.
func (r *Runner) Run(task Task) {
	r.logger.Debug().Stringer("task", task).Msg("Executing task")

	if !r.hbWatcherStarted {
		r.startHeartbeatWatcher()
		r.hbWatcherStarted = true
	}

	switch task.Type {
	case TaskTypeAskSplit:
		r.onAskSplit(task.Data.(*AskSplitTask))
	case TaskTypeHeartbeat:
		data := task.Data.(*HeartbeatTask)
		size, err := r.engine.ApproximateRegionSize(data.Region)
		if err != nil {
			r.logger.Debug().Err(err).Uint64("region_id", data.Region.ID).
				Msg("Failed to probe region size")
			size = 0
		}
		r.onHeartbeat(data, size)
	case TaskTypeStoreHeartbeat:
		r.onStoreHeartbeat(task.Data.(*StoreHeartbeatTask))
	case TaskTypeReportSplit:
		r.onReportSplit(task.Data.(*ReportSplitTask))
	case TaskTypeValidatePeer:
		r.onValidatePeer(task.Data.(*ValidatePeerTask))
	default:
		r.logger.Error().Int("task_type", int(task.Type)).Msg("Unsupported task type")
	}
}

// onAskSplit asks the director for split identity, then forwards a split
// command carrying the allocated IDs
func (r *Runner) onAskSplit(t *AskSplitTask) {
	metrics.RequestTotal.WithLabelValues("ask split", "all").Inc()

	go func() {
		resp, err := r.director.AskSplit(context.TODO(), t.Region)
		if err != nil {
			// The Raft layer re-issues the split request; the callback
			// is dropped with it.
			r.logger.Debug().Err(err).Uint64("region_id", t.Region.ID).
				Msg("Failed to ask split")
			return
		}
		metrics.RequestTotal.WithLabelValues("ask split", "success").Inc()

		r.logger.Info().
			Uint64("region_id", t.Region.ID).
			Uint64("new_region_id", resp.NewRegionID).
			Msg("Trying to split region")

		req := newSplitRequest(t.SplitKey, resp.NewRegionID, resp.NewPeerIDs, t.RightDerive)
		// The epoch is read after the director responded, so the command
		// carries the exact epoch present when the split was authorized.
		epoch := t.Region.Epoch
		r.sendAdminRequest(t.Region.ID, epoch, t.Peer, req, t.Callback)
	}()
}

// onHeartbeat submits one region heartbeat. The response is not awaited:
// directives arrive on the watcher's stream, so one submission may yield
// zero, one, or many directives later.
func (r *Runner) onHeartbeat(t *HeartbeatTask, approximateSize uint64) {
	metrics.RequestTotal.WithLabelValues("heartbeat", "all").Inc()

	stat := &director.RegionStat{
		DownPeers:       t.DownPeers,
		PendingPeers:    t.PendingPeers,
		WrittenBytes:    t.WrittenBytes,
		WrittenKeys:     t.WrittenKeys,
		ReadBytes:       t.ReadBytes,
		ReadKeys:        t.ReadKeys,
		ApproximateSize: approximateSize,
	}

	go func() {
		if err := r.director.RegionHeartbeat(context.TODO(), t.Region, t.Peer, stat); err != nil {
			r.logger.Debug().Err(err).Uint64("region_id", t.Region.ID).
				Msg("Failed to send region heartbeat")
		}
	}()
}

// onStoreHeartbeat completes the store stats with capacity accounting and
// submits them
func (r *Runner) onStoreHeartbeat(t *StoreHeartbeatTask) {
	stats := t.Stats
	info := t.StoreInfo

	usage, err := r.diskUsage(info.Engine.Path())
	if err != nil {
		r.logger.Error().Err(err).Str("path", info.Engine.Path()).
			Msg("Failed to stat filesystem, skipping store heartbeat")
		return
	}

	capacity := info.Capacity
	if capacity == 0 || usage.Total < capacity {
		capacity = usage.Total
	}
	stats.Capacity = capacity

	used := stats.UsedSize + info.Engine.Size()
	stats.UsedSize = used

	// used can exceed capacity transiently during compaction
	var available uint64
	if capacity > used {
		available = capacity - used
	} else {
		r.logger.Warn().Uint64("capacity", capacity).Uint64("used_size", used).
			Msg("No available space")
	}

	// The configured capacity may over-promise what the filesystem still
	// holds; both ceilings bind.
	if available > usage.Free {
		available = usage.Free
	}
	stats.Available = available

	metrics.StoreSizeBytes.WithLabelValues("capacity").Set(float64(capacity))
	metrics.StoreSizeBytes.WithLabelValues("available").Set(float64(available))

	go func() {
		if err := r.director.StoreHeartbeat(context.TODO(), stats); err != nil {
			r.logger.Error().Err(err).Uint64("store_id", stats.StoreID).
				Msg("Failed to send store heartbeat")
		}
	}()
}

// onReportSplit notifies the director that a split has been applied
func (r *Runner) onReportSplit(t *ReportSplitTask) {
	metrics.RequestTotal.WithLabelValues("report split", "all").Inc()

	go func() {
		if err := r.director.ReportSplit(context.TODO(), t.Left, t.Right); err != nil {
			r.logger.Error().Err(err).
				Uint64("left_region_id", t.Left.ID).
				Uint64("right_region_id", t.Right.ID).
				Msg("Failed to report split")
			return
		}
		metrics.RequestTotal.WithLabelValues("report split", "success").Inc()
	}()
}

// onValidatePeer checks a local peer against the director's view of its
// region and emits a tombstone message when the peer is obsolete
func (r *Runner) onValidatePeer(t *ValidatePeerTask) {
	metrics.RequestTotal.WithLabelValues("get region", "all").Inc()

	go func() {
		pdRegion, err := r.director.GetRegionByID(context.TODO(), t.Region.ID)
		if err != nil {
			r.logger.Error().Err(err).Uint64("region_id", t.Region.ID).
				Msg("Failed to get region")
			return
		}
		if pdRegion == nil {
			// Split applied locally but not yet reported to the director;
			// a later validation resolves it.
			// TODO: handle merge
			return
		}
		metrics.RequestTotal.WithLabelValues("get region", "success").Inc()

		if types.IsEpochStale(pdRegion.Epoch, t.Region.Epoch) {
			// The local epoch is fresher than the director's even after
			// the leader-missing window. Something is wrong in the
			// system; record it and stand down.
			r.logger.Error().
				Uint64("region_id", t.Region.ID).
				Uint64("peer_id", t.Peer.ID).
				Str("local_epoch", fmt.Sprintf("%+v", t.Region.Epoch)).
				Str("director_epoch", fmt.Sprintf("%+v", pdRegion.Epoch)).
				Msg("Local region epoch is greater than the director's")
			metrics.ValidatePeerTotal.WithLabelValues("region epoch error").Inc()
			return
		}

		if pdRegion.GetPeer(t.Peer.ID) == nil {
			// Peer is no longer a member of the region. Send it a
			// tombstone message to destroy itself.
			r.logger.Info().
				Uint64("region_id", t.Region.ID).
				Uint64("peer_id", t.Peer.ID).
				Msg("Peer is not a valid member of its region, to be destroyed soon")
			metrics.ValidatePeerTotal.WithLabelValues("peer stale").Inc()
			r.sendDestroyPeer(t.Region, t.Peer, pdRegion)
			return
		}

		r.logger.Info().
			Uint64("region_id", t.Region.ID).
			Uint64("peer_id", t.Peer.ID).
			Msg("Peer is still a valid member of its region")
		metrics.ValidatePeerTotal.WithLabelValues("peer valid").Inc()
	}()
}

// startHeartbeatWatcher subscribes to the director's directive stream. The
// stream is expected to outlive the process; its failure is a violated
// protocol invariant and aborts the worker.
func (r *Runner) startHeartbeatWatcher() {
	storeID := r.storeID
	go func() {
		err := r.director.WatchHeartbeatResponses(context.TODO(), storeID, r.onHeartbeatResponse)
		if err != nil {
			panic(fmt.Sprintf("store %d: heartbeat response stream failed: %v", storeID, err))
		}
		r.logger.Info().Uint64("store_id", storeID).
			Msg("Region heartbeat response watcher exited")
	}()
}

// onHeartbeatResponse translates one director directive into a local admin
// command. Directives carry no callback; the director observes the effect
// through subsequent heartbeats.
func (r *Runner) onHeartbeatResponse(resp *director.HeartbeatResponse) {
	metrics.RequestTotal.WithLabelValues("heartbeat", "success").Inc()

	switch {
	case resp.ChangePeer != nil:
		metrics.HeartbeatTotal.WithLabelValues("change peer").Inc()
		r.logger.Info().
			Uint64("region_id", resp.RegionID).
			Str("change_type", string(resp.ChangePeer.ChangeType)).
			Uint64("peer_id", resp.ChangePeer.Peer.ID).
			Msg("Trying to change peer")
		req := newChangePeerRequest(resp.ChangePeer.ChangeType, resp.ChangePeer.Peer)
		r.sendAdminRequest(resp.RegionID, resp.Epoch, resp.TargetPeer, req, nil)

	case resp.TransferLeader != nil:
		metrics.HeartbeatTotal.WithLabelValues("transfer leader").Inc()
		r.logger.Info().
			Uint64("region_id", resp.RegionID).
			Uint64("peer_id", resp.TransferLeader.Peer.ID).
			Msg("Trying to transfer leader")
		req := newTransferLeaderRequest(resp.TransferLeader.Peer)
		r.sendAdminRequest(resp.RegionID, resp.Epoch, resp.TargetPeer, req, nil)
	}
}
