/*
Package engine provides the node-local storage engine abstraction and its
BoltDB implementation.

The placement worker needs three read-only probes from the engine: the
directory it lives in (to stat the filesystem for total and free space), its
on-disk footprint (for store capacity accounting), and an approximate size
for a region's key range (attached to region heartbeats). The Engine
interface captures exactly those probes plus lifecycle; BoltEngine backs
them with a single-file BoltDB database.

# Core Components

Engine interface:
  - Path: directory to run filesystem probes against
  - Size: engine's used bytes, added into store heartbeat used-size
  - ApproximateRegionSize: per-region size estimate, best effort
  - Close: release the database

BoltEngine:
  - Single "kv" bucket holding the node's key space
  - Size read from the transaction view of the database file
  - ApproximateRegionSize via a cursor scan over [StartKey, EndKey)
  - Put/Get/Delete for the apply path and for tests

# Usage

	eng, err := engine.OpenBolt("/var/lib/burrow")
	if err != nil {
		return err
	}
	defer eng.Close()

	size, err := eng.ApproximateRegionSize(region)
	if err != nil {
		size = 0 // heartbeats degrade to zero rather than fail
	}

# Integration Points

This package integrates with:

  - pkg/placement: Capacity arithmetic and region heartbeat augmentation
  - cmd/burrow: Opens the engine under the configured data directory
*/
package engine
