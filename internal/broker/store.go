// Package broker persists the broker contact registry. A Store owns the
// collection and its file; every mutation rewrites the whole file, so the
// on-disk list always matches memory.
package broker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"estatehub/internal/types"
)

// Store is the sole owner of the persisted broker collection. All methods
// are safe for concurrent use.
type Store struct {
	path  string
	now   func() time.Time
	newID func() string
	log   *zap.Logger

	mu      sync.Mutex
	brokers []types.BrokerRecord
}

// Option adjusts a Store at construction time.
type Option func(*Store)

// WithClock injects the timestamp source for new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator injects the record id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger attaches a logger for load and persist diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open builds a store over the given file and loads whatever is already
// there. A missing or corrupt file yields an empty collection; only genuine
// I/O failures are returned.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:  path,
		now:   time.Now,
		newID: uuid.NewString,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path reports the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Load re-reads the collection from disk, replacing the in-memory copy.
// Corrupt content is treated as an empty registry: the file is the only
// copy of the data, and refusing to start over it would lock the user out
// of the other tools.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.brokers = nil
			return nil
		}
		return fmt.Errorf("read brokers file: %w", err)
	}

	var brokers []types.BrokerRecord
	if err := json.Unmarshal(data, &brokers); err != nil {
		s.log.Warn("brokers file unreadable, starting with an empty registry",
			zap.String("path", s.path),
			zap.String("kind", string(types.CorruptStorage)),
			zap.Error(err))
		s.brokers = nil
		return nil
	}
	s.brokers = brokers
	s.log.Debug("brokers loaded", zap.String("path", s.path), zap.Int("count", len(brokers)))
	return nil
}

// All returns a copy of the collection in insertion order. Callers render
// from the copy and re-fetch after any mutation.
func (s *Store) All() []types.BrokerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.BrokerRecord, len(s.brokers))
	copy(out, s.brokers)
	return out
}

// Len reports the current number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.brokers)
}

// Add validates, appends, and persists a new record, returning it. Name and
// contact are trimmed; both must be non-empty.
func (s *Store) Add(name, contact string) (types.BrokerRecord, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)
	if name == "" || contact == "" {
		return types.BrokerRecord{}, types.NewError(types.MissingField, "please enter both name and contact information")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := types.BrokerRecord{
		ID:      s.newID(),
		Name:    name,
		Contact: contact,
		AddedOn: s.now().Format(types.AddedOnLayout),
	}
	s.brokers = append(s.brokers, rec)
	if err := s.persistLocked(); err != nil {
		s.brokers = s.brokers[:len(s.brokers)-1]
		return types.BrokerRecord{}, err
	}
	return rec, nil
}

// Delete removes the record at index (0-based, insertion order) and
// persists the remainder, returning the removed record.
func (s *Store) Delete(index int) (types.BrokerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.brokers) {
		return types.BrokerRecord{}, types.NewError(types.InvalidSelection, "please select a valid broker to delete")
	}
	removed := s.brokers[index]
	prev := s.brokers
	s.brokers = append(prev[:index:index], prev[index+1:]...)
	if err := s.persistLocked(); err != nil {
		s.brokers = prev
		return types.BrokerRecord{}, err
	}
	return removed, nil
}

// persistLocked writes the whole collection through a temp-file rename so an
// interrupted write can never truncate the registry. Callers hold mu.
func (s *Store) persistLocked() error {
	records := s.brokers
	if records == nil {
		records = []types.BrokerRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode brokers: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "brokers-*.json")
	if err != nil {
		return fmt.Errorf("create temp brokers file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write brokers file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close brokers file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace brokers file: %w", err)
	}
	s.log.Debug("brokers persisted", zap.String("path", s.path), zap.Int("count", len(records)))
	return nil
}
