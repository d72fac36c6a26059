package adminshell

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// CollectionFetcher lists one resource collection, typically over the REST
// client or straight from the content service.
type CollectionFetcher interface {
	List(ctx context.Context, resource string) ([]content.Record, error)
}

// Shell owns one collection snapshot per catalog resource and the shared
// refresh the resource managers call after successful mutations.
type Shell struct {
	fetcher   CollectionFetcher
	resources content.ResourceRegistry

	mu          sync.RWMutex
	collections map[string][]content.Record
	errs        map[string]error
	loading     bool
}

// NewShell builds a shell over the given fetcher and catalog.
func NewShell(fetcher CollectionFetcher, resources content.ResourceRegistry) (*Shell, error) {
	if fetcher == nil {
		return nil, errors.New("adminshell: collection fetcher is required")
	}
	if resources == nil {
		return nil, errors.New("adminshell: resource registry is required")
	}
	return &Shell{
		fetcher:     fetcher,
		resources:   resources,
		collections: map[string][]content.Record{},
		errs:        map[string]error{},
	}, nil
}

// FetchAll re-requests every catalog collection concurrently under a single
// loading flag. Each resource keeps isolated error state: a failed fetch
// preserves the previously loaded collection and records its own error
// while successful ones are replaced wholesale.
func (s *Shell) FetchAll(ctx context.Context) {
	defs := s.resources.Definitions()

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	type result struct {
		code    string
		records []content.Record
		err     error
	}
	results := make([]result, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			records, err := s.fetcher.List(gctx, def.Code)
			results[i] = result{code: def.Code, records: records, err: err}
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range results {
		if res.err != nil {
			s.errs[res.code] = res.err
			continue
		}
		delete(s.errs, res.code)
		s.collections[res.code] = res.records
	}
}

// Refresh is the callback handed to resource managers.
func (s *Shell) Refresh(ctx context.Context) {
	s.FetchAll(ctx)
}

// Collection returns the last fetched records for a resource.
func (s *Shell) Collection(resource string) []content.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.collections[resource]
	out := make([]content.Record, len(records))
	copy(out, records)
	return out
}

// Err returns the isolated fetch error for a resource, if any.
func (s *Shell) Err(resource string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errs[resource]
}

// Loading reports whether a batch fetch is in flight.
func (s *Shell) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
