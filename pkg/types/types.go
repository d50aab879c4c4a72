package types

// PeerRole defines the replication role of a peer within its region
type PeerRole string

const (
	PeerRoleVoter   PeerRole = "voter"
	PeerRoleLearner PeerRole = "learner"
)

// ConfChangeType defines a Raft membership change operation
type ConfChangeType string

const (
	ConfChangeAddNode        ConfChangeType = "add-node"
	ConfChangeRemoveNode     ConfChangeType = "remove-node"
	ConfChangeAddLearnerNode ConfChangeType = "add-learner-node"
)

// RegionEpoch orders a region's membership and key-range revisions.
// ConfVer advances on membership changes, Version on splits and merges.
type RegionEpoch struct {
	ConfVer uint64
	Version uint64
}

// Clone returns a deep copy of the epoch
func (e *RegionEpoch) Clone() *RegionEpoch {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

// Peer represents one Raft member of a region
type Peer struct {
	ID      uint64
	StoreID uint64
	Role    PeerRole
}

// Clone returns a deep copy of the peer
func (p *Peer) Clone() *Peer {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// Region represents a contiguous key range replicated by a Raft group.
// EndKey is exclusive; an empty EndKey means the range is unbounded.
type Region struct {
	ID       uint64
	StartKey []byte
	EndKey   []byte
	Epoch    *RegionEpoch
	Peers    []*Peer
}

// Clone returns a deep copy of the region
func (r *Region) Clone() *Region {
	if r == nil {
		return nil
	}
	clone := &Region{
		ID:       r.ID,
		StartKey: append([]byte(nil), r.StartKey...),
		EndKey:   append([]byte(nil), r.EndKey...),
		Epoch:    r.Epoch.Clone(),
	}
	for _, p := range r.Peers {
		clone.Peers = append(clone.Peers, p.Clone())
	}
	return clone
}

// GetPeer returns the member with the given peer ID, or nil
func (r *Region) GetPeer(peerID uint64) *Peer {
	for _, p := range r.Peers {
		if p.ID == peerID {
			return p
		}
	}
	return nil
}

// PeerStats reports a peer that has been unreachable, and for how long
type PeerStats struct {
	Peer        *Peer
	DownSeconds uint64
}

// StoreStats is the capacity and load telemetry reported by a store
// heartbeat. Capacity, Available and UsedSize are completed by the
// placement worker; the remaining fields pass through from the caller.
type StoreStats struct {
	StoreID      uint64
	Capacity     uint64
	Available    uint64
	UsedSize     uint64
	RegionCount  uint64
	LeaderCount  uint64
	BytesWritten uint64
	KeysWritten  uint64
	IsBusy       bool
}

// Clone returns a deep copy of the stats
func (s *StoreStats) Clone() *StoreStats {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}
