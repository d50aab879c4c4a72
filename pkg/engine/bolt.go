package engine

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/cuemby/burrow/pkg/types"
	bolt "go.etcd.io/bbolt"
)

var bucketKV = []byte("kv")

// BoltEngine implements Engine using BoltDB
type BoltEngine struct {
	dataDir string
	db      *bolt.DB
}

// OpenBolt opens (or creates) a BoltDB-backed engine under dataDir
func OpenBolt(dataDir string) (*BoltEngine, error) {
	dbPath := filepath.Join(dataDir, "burrow.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketKV); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketKV, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltEngine{dataDir: dataDir, db: db}, nil
}

// Path returns the engine's data directory
func (e *BoltEngine) Path() string {
	return e.dataDir
}

// Put stores a key-value pair
func (e *BoltEngine) Put(key, value []byte) error {
	return e.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Put(key, value)
	})
}

// Get returns the value for key, or nil when absent
func (e *BoltEngine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketKV).Get(key)
		if data != nil {
			value = append([]byte(nil), data...)
		}
		return nil
	})
	return value, err
}

// Delete removes a key
func (e *BoltEngine) Delete(key []byte) error {
	return e.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Delete(key)
	})
}

// Size returns the database file size in bytes
func (e *BoltEngine) Size() uint64 {
	var size int64
	e.db.View(func(tx *bolt.Tx) error {
		size = tx.Size()
		return nil
	})
	if size < 0 {
		return 0
	}
	return uint64(size)
}

// ApproximateRegionSize sums key and value lengths over the region's key
// range. EndKey is exclusive; an empty EndKey scans to the end of the
// keyspace.
func (e *BoltEngine) ApproximateRegionSize(region *types.Region) (uint64, error) {
	var total uint64
	err := e.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketKV).Cursor()
		k, v := c.Seek(region.StartKey)
		for ; k != nil; k, v = c.Next() {
			if len(region.EndKey) > 0 && bytes.Compare(k, region.EndKey) >= 0 {
				break
			}
			total += uint64(len(k) + len(v))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan region %d: %w", region.ID, err)
	}
	return total, nil
}

// Close closes the database
func (e *BoltEngine) Close() error {
	return e.db.Close()
}
