/*
Package placement implements the node-local placement coordination worker of
a Burrow store.

The worker reconciles the node's view of cluster topology with the placement
director: it reports region- and store-level telemetry, requests split
authorizations, validates peer membership, and translates the director's
rebalancing directives into local Raft admin commands. It multiplexes five
asynchronous conversations with the director over a single driver goroutine
and never stalls the surrounding Raft machinery while waiting on the
network.

# Architecture

	┌───────────────────── PLACEMENT WORKER ─────────────────────┐
	│                                                             │
	│  ┌────────────────────────────────────────────┐            │
	│  │              Task Queue                     │            │
	│  │  - Bounded channel, non-blocking Schedule   │            │
	│  │  - Fed by the Raft layer (ticks, splits,    │            │
	│  │    stale-peer checks)                       │            │
	│  └──────────────────┬─────────────────────────┘            │
	│                     │ arrival order                         │
	│  ┌──────────────────▼─────────────────────────┐            │
	│  │         Runner (single goroutine)           │            │
	│  │  - Dispatches by task type                  │            │
	│  │  - Starts the response watcher exactly once │            │
	│  │  - Spawns each director call onto its own   │            │
	│  │    goroutine and returns immediately        │            │
	│  └───────┬──────────────────────────┬─────────┘            │
	│          │                          │                       │
	│  ┌───────▼──────────┐   ┌──────────▼─────────────┐         │
	│  │  Task handlers   │   │  Heartbeat response     │         │
	│  │  - AskSplit      │   │  watcher (long-lived)   │         │
	│  │  - Heartbeat     │   │  - Drains the director  │         │
	│  │  - StoreHeartbeat│   │    directive stream     │         │
	│  │  - ReportSplit   │   │  - ChangePeer /         │         │
	│  │  - ValidatePeer  │   │    TransferLeader       │         │
	│  └───────┬──────────┘   └──────────┬─────────────┘         │
	│          │                          │                       │
	│  ┌───────▼──────────────────────────▼─────────┐            │
	│  │        Outbound command channel             │            │
	│  │  - Admin commands with one-shot callbacks   │            │
	│  │  - Tombstone Raft messages                  │            │
	│  │  - Non-blocking TrySend, drop on full       │            │
	│  └────────────────────────────────────────────┘            │
	└─────────────────────────────────────────────────────────┘

# Core Components

Worker:
  - The driver: one goroutine draining a bounded task queue in arrival order
  - Schedule never blocks; a full queue drops the task with an error
  - Stop drains outstanding tasks before returning

Runner:
  - Owns the director client, the command sender and the engine reference
  - Handler-internal failures are logged and absorbed; the worker keeps
    running. The only fatal path is directive-stream failure, which
    indicates a violated protocol invariant and panics.

Task handlers:
  - AskSplit: asks the director for split identity, forwards a split
    command carrying the allocated IDs and the caller's callback
  - Heartbeat: fire-and-forget region telemetry, augmented with the
    engine's approximate region size
  - StoreHeartbeat: completes store stats with capacity accounting
    (capacity = min(configured, disk total) when configured, else disk
    total; available = min(capacity - used, disk free), saturating at zero)
  - ReportSplit: notifies the director that a split has been applied
  - ValidatePeer: compares a local peer against the director's region
    view and tombstones obsolete peers

Heartbeat response watcher:
  - Started lazily on the first task dispatch, exactly once
  - Translates each directive into a ChangePeer or TransferLeader admin
    command in director-supplied order

# Concurrency Model

The Runner is driven from a single Worker goroutine, so its state (the
watcher gate) needs no synchronization. Every task's director call runs on
an independent goroutine that shares the Runner's handles; the engine and
filesystem probes run on the driver goroutine. The command channel
serializes the output of all goroutines. No ordering is promised across
tasks, only within the command sequence of a single task and within the
directive stream.

# Usage

	ch := command.NewChannel(4096)
	worker := placement.NewWorker("placement", 256)
	worker.Start(placement.NewRunner(storeID, directorClient, ch, eng))

	worker.Schedule(placement.Task{
		Type: placement.TaskTypeHeartbeat,
		Data: &placement.HeartbeatTask{Region: region, Peer: leader},
	})

# Integration Points

This package integrates with:

  - pkg/director: All five request operations plus the directive stream
  - pkg/command: Admin command and tombstone emission
  - pkg/engine: Used-size and approximate-region-size probes
  - pkg/metrics: Request, directive, validation and capacity telemetry
  - The Raft layer: Produces tasks, consumes emitted commands
*/
package placement
