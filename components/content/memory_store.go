package content

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory ResourceStore for tests and examples.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]map[string]Record
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: map[string]map[string]Record{},
		now:     time.Now,
	}
}

// List returns a resource's records ordered by position, then creation time.
func (s *MemoryStore) List(ctx context.Context, resource string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.records[resource]
	out := make([]Record, 0, len(bucket))
	for _, rec := range bucket {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Get fetches a single record by id.
func (s *MemoryStore) Get(ctx context.Context, resource, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[resource][id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, resource, id)
	}
	return rec.Clone(), nil
}

// Create stores a new record, assigning id and timestamps.
func (s *MemoryStore) Create(ctx context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Version == 0 {
		rec.Version = 1
	}
	now := s.now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	bucket, ok := s.records[rec.Resource]
	if !ok {
		bucket = map[string]Record{}
		s.records[rec.Resource] = bucket
	}
	bucket[rec.ID] = rec.Clone()
	return rec, nil
}

// Update replaces a record's payload and position, guarded by version: the
// stored version must equal the incoming one, and the write bumps it.
func (s *MemoryStore) Update(ctx context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.records[rec.Resource][rec.ID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, rec.Resource, rec.ID)
	}
	if current.Version != rec.Version {
		return Record{}, fmt.Errorf("%w: %s/%s stored %d, write carried %d",
			ErrVersionConflict, rec.Resource, rec.ID, current.Version, rec.Version)
	}
	rec.Version = current.Version + 1
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = s.now().UTC()
	s.records[rec.Resource][rec.ID] = rec.Clone()
	return rec, nil
}

// Delete removes a record. Deleting an absent record returns ErrRecordNotFound.
func (s *MemoryStore) Delete(ctx context.Context, resource, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[resource][id]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrRecordNotFound, resource, id)
	}
	delete(s.records[resource], id)
	return nil
}

// Count reports how many records a resource holds.
func (s *MemoryStore) Count(ctx context.Context, resource string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[resource]), nil
}
