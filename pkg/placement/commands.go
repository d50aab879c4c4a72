package placement

import (
	"time"

	"github.com/cuemby/burrow/pkg/command"
	"github.com/cuemby/burrow/pkg/types"
)

func newChangePeerRequest(changeType types.ConfChangeType, peer *types.Peer) *command.AdminRequest {
	return &command.AdminRequest{
		CmdType: command.AdminCmdChangePeer,
		ChangePeer: &command.ChangePeerRequest{
			ChangeType: changeType,
			Peer:       peer,
		},
	}
}

func newSplitRequest(splitKey []byte, newRegionID uint64, newPeerIDs []uint64, rightDerive bool) *command.AdminRequest {
	return &command.AdminRequest{
		CmdType: command.AdminCmdSplit,
		Split: &command.SplitRequest{
			SplitKey:    splitKey,
			NewRegionID: newRegionID,
			NewPeerIDs:  newPeerIDs,
			RightDerive: rightDerive,
		},
	}
}

func newTransferLeaderRequest(peer *types.Peer) *command.AdminRequest {
	return &command.AdminRequest{
		CmdType: command.AdminCmdTransferLeader,
		TransferLeader: &command.TransferLeaderRequest{
			Peer: peer,
		},
	}
}

// sendAdminRequest wraps req in a command header and enqueues it without
// blocking. A rejected send is logged and dropped together with its
// callback; the director re-drives on the next heartbeat cycle.
func (r *Runner) sendAdminRequest(regionID uint64, epoch *types.RegionEpoch, peer *types.Peer, req *command.AdminRequest, callback *command.Callback) {
	msg := command.NewPeerMsg(command.MsgTypeRaftCmd, regionID, &command.MsgRaftCmd{
		SendTime: time.Now(),
		Request: &command.RaftCmdRequest{
			Header: &command.Header{
				RegionID: regionID,
				Epoch:    epoch,
				Peer:     peer,
			},
			Admin: req,
		},
		Callback: callback,
	})

	if err := r.sender.TrySend(msg); err != nil {
		r.logger.Error().Err(err).
			Uint64("region_id", regionID).
			Str("cmd_type", string(req.CmdType)).
			Msg("Failed to send admin request")
	}
}

// sendDestroyPeer pushes a tombstone Raft message at an obsolete peer. The
// message carries the director's epoch so the receiver can verify it is
// truly stale before destroying itself.
func (r *Runner) sendDestroyPeer(local *types.Region, peer *types.Peer, pdRegion *types.Region) {
	msg := command.NewPeerMsg(command.MsgTypeRaftMessage, local.ID, &command.RaftMessage{
		RegionID:    local.ID,
		FromPeer:    peer,
		ToPeer:      peer,
		Epoch:       pdRegion.Epoch,
		IsTombstone: true,
	})

	if err := r.sender.TrySend(msg); err != nil {
		r.logger.Error().Err(err).
			Uint64("region_id", local.ID).
			Msg("Failed to send tombstone message")
	}
}
