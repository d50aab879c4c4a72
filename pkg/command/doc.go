/*
Package command defines the messages the placement worker emits toward the
local Raft layer, and the bounded channel that carries them.

Two shapes cross the channel: admin commands (MsgRaftCmd, a RaftCmdRequest
plus a one-shot Callback) and raw Raft messages (currently only the
tombstone variant used to destroy obsolete peers). The Raft layer owns the
consumer side; the placement worker and any of its spawned goroutines share
the Sender side.

# Core Components

Msg / MsgType:
  - Tagged envelope routed by region ID
  - MsgTypeRaftCmd carries *MsgRaftCmd
  - MsgTypeRaftMessage carries *RaftMessage

AdminRequest:
  - Tagged variant over change-peer, split and transfer-leader
  - Wrapped in a Header carrying (region ID, epoch, proposing peer) at send

Callback:
  - Single-shot consumer of a command outcome
  - nil is a valid no-op sink; Done and Wait are nil-safe

Channel:
  - Bounded; TrySend never blocks and fails fast with ErrChannelFull
  - Close rejects further sends without dropping enqueued messages

# Usage

	ch := command.NewChannel(4096)

	msg := command.NewPeerMsg(command.MsgTypeRaftCmd, regionID, &command.MsgRaftCmd{
		SendTime: time.Now(),
		Request:  req,
		Callback: cb,
	})
	if err := ch.TrySend(msg); err != nil {
		// channel full or closed; the director re-drives on the next
		// heartbeat cycle
	}

# Integration Points

This package integrates with:

  - pkg/placement: Builds and sends admin commands and tombstone messages
  - The Raft layer: Consumes Channel.Receive() and completes callbacks
*/
package command
