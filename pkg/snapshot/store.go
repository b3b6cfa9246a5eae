package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrStale is returned by LoadFresh when the stored snapshot was compiled
// from a different source.
var ErrStale = errors.New("snapshot is stale")

// Store manages a snapshot file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot to disk. The file is replaced atomically.
func (s *Store) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snap.Version = Version
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist.
func (s *Store) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// LoadFresh reads the snapshot and checks it was compiled from src.
// Returns nil, nil if the file doesn't exist and ErrStale if the digests
// differ.
func (s *Store) LoadFresh(src []byte) (*Snapshot, error) {
	snap, err := s.Load()
	if err != nil || snap == nil {
		return nil, err
	}
	if !snap.Matches(src) {
		return nil, ErrStale
	}
	return snap, nil
}

// Clear removes the snapshot file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
