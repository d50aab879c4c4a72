package engine

import (
	"github.com/cuemby/burrow/pkg/types"
)

// Engine is the node-local storage engine as seen by the placement worker:
// a path to probe the filesystem under, a used-size reader, and a
// per-region approximate size probe. The worker only reads; writes go
// through the Raft apply path.
type Engine interface {
	// Path returns the directory holding the engine's files
	Path() string

	// Size returns the engine's on-disk footprint in bytes
	Size() uint64

	// ApproximateRegionSize estimates the bytes stored within the
	// region's key range
	ApproximateRegionSize(region *types.Region) (uint64, error)

	// Close releases the engine
	Close() error
}
