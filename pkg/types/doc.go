/*
Package types defines the core data structures shared across Burrow packages.

The types package contains the region and peer metadata model used by the
placement worker and the director: regions (contiguous key ranges replicated
by Raft groups), peers (individual Raft members), region epochs (the partial
order over membership and range revisions), and store-level statistics.

These types are metadata only; the worker treats them as opaque identity and
never mutates a region it has been handed. Clone methods exist so components
that do need a private copy (the in-process director, tests) can take one
explicitly.

# Usage

	region := &types.Region{
		ID:    7,
		Epoch: &types.RegionEpoch{ConfVer: 1, Version: 1},
		Peers: []*types.Peer{
			{ID: 101, StoreID: 1, Role: types.PeerRoleVoter},
			{ID: 102, StoreID: 2, Role: types.PeerRoleVoter},
		},
	}

	if types.IsEpochStale(remote.Epoch, region.Epoch) {
		// remote metadata lags behind the local view
	}

# Integration Points

This package integrates with:

  - pkg/placement: Task payloads and capacity arithmetic
  - pkg/director: Region registry and heartbeat payloads
  - pkg/command: Admin command headers and tombstone messages
  - pkg/engine: Region key-range size probes
*/
package types
