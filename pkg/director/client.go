package director

import (
	"context"

	"github.com/cuemby/burrow/pkg/types"
)

// RegionStat carries the telemetry attached to one region heartbeat
type RegionStat struct {
	DownPeers       []*types.PeerStats
	PendingPeers    []*types.Peer
	WrittenBytes    uint64
	WrittenKeys     uint64
	ReadBytes       uint64
	ReadKeys        uint64
	ApproximateSize uint64
}

// AskSplitResponse allocates identity for the half of a split region that
// does not inherit the original region ID
type AskSplitResponse struct {
	NewRegionID uint64
	NewPeerIDs  []uint64
}

// ChangePeerDirective instructs a region to add or remove a member
type ChangePeerDirective struct {
	ChangeType types.ConfChangeType
	Peer       *types.Peer
}

// TransferLeaderDirective instructs a region to move its leadership
type TransferLeaderDirective struct {
	Peer *types.Peer
}

// HeartbeatResponse is one directive pushed by the director on its region
// heartbeat response stream. At most one of ChangePeer and TransferLeader
// is set; a response with neither is ignored by consumers.
type HeartbeatResponse struct {
	RegionID       uint64
	Epoch          *types.RegionEpoch
	TargetPeer     *types.Peer
	ChangePeer     *ChangePeerDirective
	TransferLeader *TransferLeaderDirective
}

// Client is the node's view of the placement director. Implementations must
// be safe for concurrent use; the placement worker calls in from multiple
// goroutines.
//
// Requests are not retried here. The director and the surrounding event
// loop re-drive failed conversations on the next heartbeat cycle.
type Client interface {
	// AskSplit asks the director to authorize a split of region and to
	// allocate IDs for the derived half
	AskSplit(ctx context.Context, region *types.Region) (*AskSplitResponse, error)

	// RegionHeartbeat reports one region's state and telemetry. The
	// response is not returned here; directives arrive on the stream
	// subscribed via WatchHeartbeatResponses.
	RegionHeartbeat(ctx context.Context, region *types.Region, leader *types.Peer, stat *RegionStat) error

	// StoreHeartbeat reports store-level capacity and load
	StoreHeartbeat(ctx context.Context, stats *types.StoreStats) error

	// ReportSplit notifies the director that a split has been applied
	ReportSplit(ctx context.Context, left, right *types.Region) error

	// GetRegionByID returns the director's authoritative view of a
	// region, or (nil, nil) when the region is not registered
	GetRegionByID(ctx context.Context, regionID uint64) (*types.Region, error)

	// WatchHeartbeatResponses invokes handler for every directive the
	// director pushes for storeID. It blocks until ctx is cancelled
	// (returning nil) or the stream fails (returning the error).
	WatchHeartbeatResponses(ctx context.Context, storeID uint64, handler func(*HeartbeatResponse)) error
}
