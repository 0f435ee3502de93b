// Package bbolt implements the ports.SnapshotStore interface using bbolt
// (embedded B+ tree). Each project gets its own top-level bucket holding a
// JSON-serialized dir→names snapshot. Writes are transactional; a crash
// mid-write cannot corrupt a previously committed snapshot.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	keyDirs    = []byte("dirs")
	keySavedAt = []byte("saved_at")
)

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot persists the full dir→names mapping for a project,
// overwriting any prior snapshot.
func (s *Store) SaveSnapshot(projectID string, dirs map[string][]string) error {
	if dirs == nil {
		return fmt.Errorf("nil snapshot")
	}
	data, err := json.Marshal(dirs)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	savedAt, err := json.Marshal(time.Now().Unix())
	if err != nil {
		return fmt.Errorf("marshal timestamp: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		proj, err := tx.CreateBucketIfNotExists([]byte(projectID))
		if err != nil {
			return err
		}
		if err := proj.Put(keyDirs, data); err != nil {
			return err
		}
		return proj.Put(keySavedAt, savedAt)
	})
}

// LoadSnapshot retrieves the snapshot for a project.
// Returns nil, nil if no snapshot exists (fresh project).
func (s *Store) LoadSnapshot(projectID string) (map[string][]string, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		proj := tx.Bucket([]byte(projectID))
		if proj == nil {
			return nil
		}
		if v := proj.Get(keyDirs); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bbolt view: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var dirs map[string][]string
	if err := json.Unmarshal(data, &dirs); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return dirs, nil
}

// SavedAt returns the unix timestamp of the last snapshot save, or 0.
func (s *Store) SavedAt(projectID string) (int64, error) {
	var ts int64
	err := s.db.View(func(tx *bolt.Tx) error {
		proj := tx.Bucket([]byte(projectID))
		if proj == nil {
			return nil
		}
		if v := proj.Get(keySavedAt); v != nil {
			return json.Unmarshal(v, &ts)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("bbolt view: %w", err)
	}
	return ts, nil
}

// DeleteProject removes all data for a project. Idempotent.
func (s *Store) DeleteProject(projectID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(projectID)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(projectID))
	})
}
