// Package store keeps decoded demos in memory for the HTTP API.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/hldemo/pkg/hldemo"
)

// Record is one stored demo. Demo aliases Data, so the record owns the
// buffer for as long as it is stored.
type Record struct {
	ID           uuid.UUID
	Name         string
	UploadedAt   time.Time
	MetadataOnly bool
	Data         []byte
	Demo         *hldemo.Demo
}

// Store is a bounded, concurrency-safe set of Records. When full, the oldest
// upload is evicted.
type Store struct {
	mu       sync.RWMutex
	records  map[uuid.UUID]*Record
	order    []uuid.UUID
	capacity int
	newID    func() uuid.UUID
}

// New returns a Store holding at most capacity records. Zero or less means
// unbounded.
func New(capacity int) *Store {
	return &Store{
		records:  make(map[uuid.UUID]*Record),
		capacity: capacity,
		newID:    uuid.New,
	}
}

// Put stores a decoded demo and returns its record.
func (s *Store) Put(name string, data []byte, demo *hldemo.Demo, metadataOnly bool, now time.Time) *Record {
	rec := &Record{
		ID:           s.newID(),
		Name:         name,
		UploadedAt:   now,
		MetadataOnly: metadataOnly,
		Data:         data,
		Demo:         demo,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity > 0 {
		for len(s.order) >= s.capacity {
			delete(s.records, s.order[0])
			s.order = s.order[1:]
		}
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return rec
}

// Get looks up a record by its textual id. Malformed ids are not found.
func (s *Store) Get(id string) (*Record, bool) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key]
	return rec, ok
}

// List returns the stored records, oldest first.
func (s *Store) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func (s *Store) Delete(id string) bool {
	key, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return false
	}
	delete(s.records, key)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == key })
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
