package command

import (
	"time"

	"github.com/cuemby/burrow/pkg/types"
)

// MsgType identifies the kind of message crossing the outbound channel
type MsgType string

const (
	MsgTypeRaftCmd     MsgType = "raft-cmd"
	MsgTypeRaftMessage MsgType = "raft-message"
)

// Msg is one message routed to the Raft layer
type Msg struct {
	Type     MsgType
	RegionID uint64
	Data     interface{}
}

// NewPeerMsg builds a message addressed to a region's peer
func NewPeerMsg(tp MsgType, regionID uint64, data interface{}) Msg {
	return Msg{Type: tp, RegionID: regionID, Data: data}
}

// AdminCmdType identifies a Raft admin command variant
type AdminCmdType string

const (
	AdminCmdChangePeer     AdminCmdType = "change-peer"
	AdminCmdSplit          AdminCmdType = "split"
	AdminCmdTransferLeader AdminCmdType = "transfer-leader"
)

// ChangePeerRequest adds or removes a member of a region
type ChangePeerRequest struct {
	ChangeType types.ConfChangeType
	Peer       *types.Peer
}

// SplitRequest splits a region at SplitKey. If RightDerive is true the
// right half inherits the original region ID, otherwise the left half does.
type SplitRequest struct {
	SplitKey    []byte
	NewRegionID uint64
	NewPeerIDs  []uint64
	RightDerive bool
}

// TransferLeaderRequest moves region leadership to Peer
type TransferLeaderRequest struct {
	Peer *types.Peer
}

// AdminRequest is a Raft command targeting a region's membership, split or
// leadership rather than its data. Exactly one variant field is set,
// matching CmdType.
type AdminRequest struct {
	CmdType        AdminCmdType
	ChangePeer     *ChangePeerRequest
	Split          *SplitRequest
	TransferLeader *TransferLeaderRequest
}

// Header carries the region identity an admin command is checked against
// before it is proposed
type Header struct {
	RegionID uint64
	Epoch    *types.RegionEpoch
	Peer     *types.Peer
}

// RaftCmdRequest is a complete admin command ready for proposal
type RaftCmdRequest struct {
	Header *Header
	Admin  *AdminRequest
}

// RaftCmdResponse is the outcome of a proposed command, delivered through
// the command's callback once the Raft layer has applied or rejected it
type RaftCmdResponse struct {
	Header *Header
	Err    error
}

// RaftMessage is a peer-to-peer Raft transport message. The placement
// worker emits only the tombstone variant, instructing an obsolete peer to
// destroy itself.
type RaftMessage struct {
	RegionID    uint64
	FromPeer    *types.Peer
	ToPeer      *types.Peer
	Epoch       *types.RegionEpoch
	IsTombstone bool
}

// MsgRaftCmd pairs an admin command with its completion callback
type MsgRaftCmd struct {
	SendTime time.Time
	Request  *RaftCmdRequest
	Callback *Callback
}
