package placement

import (
	"encoding/hex"
	"fmt"

	"github.com/cuemby/burrow/pkg/command"
	"github.com/cuemby/burrow/pkg/engine"
	"github.com/cuemby/burrow/pkg/types"
)

// TaskType identifies a placement task variant
type TaskType int

const (
	TaskTypeStop TaskType = iota
	TaskTypeAskSplit
	TaskTypeHeartbeat
	TaskTypeStoreHeartbeat
	TaskTypeReportSplit
	TaskTypeValidatePeer
)

// Task is one unit of work handed to the placement worker. Data holds the
// payload struct matching Type.
type Task struct {
	Type TaskType
	Data interface{}
}

func (t Task) String() string {
	switch t.Type {
	case TaskTypeStop:
		return "stop"
	case TaskTypeAskSplit:
		data := t.Data.(*AskSplitTask)
		return fmt.Sprintf("ask split region %d with key %s", data.Region.ID, hex.EncodeToString(data.SplitKey))
	case TaskTypeHeartbeat:
		data := t.Data.(*HeartbeatTask)
		return fmt.Sprintf("heartbeat for region %d, leader %d", data.Region.ID, data.Peer.ID)
	case TaskTypeStoreHeartbeat:
		data := t.Data.(*StoreHeartbeatTask)
		return fmt.Sprintf("store heartbeat for store %d", data.Stats.StoreID)
	case TaskTypeReportSplit:
		data := t.Data.(*ReportSplitTask)
		return fmt.Sprintf("report split left %d, right %d", data.Left.ID, data.Right.ID)
	case TaskTypeValidatePeer:
		data := t.Data.(*ValidatePeerTask)
		return fmt.Sprintf("validate peer %d of region %d", data.Peer.ID, data.Region.ID)
	default:
		return fmt.Sprintf("unknown task type %d", t.Type)
	}
}

// AskSplitTask requests split authorization for a region. Callback, when
// non-nil, receives the outcome of the resulting split command.
type AskSplitTask struct {
	Region   *types.Region
	SplitKey []byte
	Peer     *types.Peer
	// If true, the right region derives the origin region ID
	RightDerive bool
	Callback    *command.Callback
}

// HeartbeatTask reports one region's state to the director
type HeartbeatTask struct {
	Region       *types.Region
	Peer         *types.Peer
	DownPeers    []*types.PeerStats
	PendingPeers []*types.Peer
	WrittenBytes uint64
	WrittenKeys  uint64
	ReadBytes    uint64
	ReadKeys     uint64
}

// StoreInfo is the capacity context of the local store
type StoreInfo struct {
	Engine engine.Engine
	// Capacity is the configured cap in bytes; 0 means unbounded
	Capacity uint64
}

// StoreHeartbeatTask reports store capacity and load. Stats arrives
// partially filled; the worker completes capacity, used size and available
// space before sending.
type StoreHeartbeatTask struct {
	Stats     *types.StoreStats
	StoreInfo StoreInfo
}

// ReportSplitTask notifies the director that a split has been applied
type ReportSplitTask struct {
	Left  *types.Region
	Right *types.Region
}

// ValidatePeerTask asks the director whether a local peer is still a
// member of its region
type ValidatePeerTask struct {
	Region *types.Region
	Peer   *types.Peer
}
