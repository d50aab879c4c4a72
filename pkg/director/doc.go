/*
Package director defines the node's view of the placement director and an
in-process implementation of it.

The director is the cluster-wide controller that owns region placement: it
allocates identity for splits, collects region and store heartbeats, and
pushes rebalancing directives (change-peer, transfer-leader) back to each
store on an open-ended response stream. The placement worker in
pkg/placement is the only caller of the Client operations.

# Core Components

Client interface:
  - AskSplit, RegionHeartbeat, StoreHeartbeat, ReportSplit, GetRegionByID
  - WatchHeartbeatResponses: long-lived directive stream subscription
  - Heartbeats are fire-and-forget; directives arrive on the stream, so a
    single heartbeat may produce zero, one, or many directives later

Local:
  - In-memory director for standalone mode and tests
  - Region registry fed by heartbeats, guarded against epoch regression
  - Monotonic ID allocator for splits and store bootstrap
  - Per-store directive stream with a PushHeartbeatResponse producer side

# Usage

	d := director.NewLocal()
	storeID := d.AllocID()

	go func() {
		err := d.WatchHeartbeatResponses(ctx, storeID, handleDirective)
		// nil on cancellation; any other error is a protocol failure
	}()

	d.PushHeartbeatResponse(storeID, &director.HeartbeatResponse{
		RegionID:   3,
		Epoch:      &types.RegionEpoch{Version: 5},
		TargetPeer: target,
		ChangePeer: &director.ChangePeerDirective{
			ChangeType: types.ConfChangeAddNode,
			Peer:       newPeer,
		},
	})

# Integration Points

This package integrates with:

  - pkg/placement: The worker drives every Client operation
  - cmd/burrow: Standalone store mode embeds a Local director
*/
package director
