// Package storage persists the entire ledger state as a single JSON
// document with crash-safe atomic replacement.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Store owns the ledger state for the lifetime of the process.
//
// The snapshot is read from disk once on Open; operations borrow it via
// Load, mutate it in memory and persist it with Save. The store itself
// performs no locking, callers serialize access (see ledger.Ledger).
type Store struct {
	path     string
	snapshot *models.Snapshot
}

// Open reads the persisted state from path. If no persisted state exists
// yet, the store starts from the canonical empty snapshot.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("no persisted state, starting empty")
		return &Store{path: path, snapshot: models.Empty()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	snapshot := &models.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}
	snapshot.Normalize()

	log.Debug().Str("path", path).Msg("loaded persisted state")
	return &Store{path: path, snapshot: snapshot}, nil
}

// Load returns the in-memory snapshot. The returned value is borrowed,
// not copied: mutations become durable on the next Save.
func (s *Store) Load() *models.Snapshot {
	return s.snapshot
}

// Replace swaps in a whole new snapshot, e.g. from a configuration
// import. The snapshot is normalized before it becomes the state; it is
// not durable until the next Save.
func (s *Store) Replace(snapshot *models.Snapshot) {
	snapshot.Normalize()
	s.snapshot = snapshot
}

// Save writes the snapshot to a temporary file and atomically replaces
// the previous state with a single rename. A crash before the rename
// leaves the previous state intact.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary state file: %w", err)
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing state file: %w", err)
	}

	log.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("saved state")
	return nil
}

// NextID increments the counter for the given entity kind and returns
// the new value. The counter mutation lives in the snapshot's metadata,
// so an allocation and the entity it was made for are persisted together
// by the same Save. Counters are never decremented, a failed operation
// that already allocated leaves a gap.
func (s *Store) NextID(kind string) uint64 {
	s.snapshot.Metadata.LastIDs[kind]++
	return s.snapshot.Metadata.LastIDs[kind]
}

// Close flushes the snapshot to disk.
func (s *Store) Close() error {
	log.Debug().Str("path", s.path).Msg("closing store")
	return s.Save()
}
