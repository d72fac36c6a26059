package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// SnapshotInput has no parameters; the query always covers the whole catalog.
type SnapshotInput struct{}

// SnapshotResult pairs the fetched collections with per-resource errors.
// A resource that failed keeps its error here and is absent from Snapshot.
type SnapshotResult struct {
	Snapshot content.Snapshot
	Errors   map[string]error
}

type snapshotService interface {
	SnapshotAll(ctx context.Context) (content.Snapshot, map[string]error)
}

// SnapshotQuery fetches every catalog collection with error isolation.
type SnapshotQuery struct {
	service snapshotService
}

// NewSnapshotQuery builds the query.
func NewSnapshotQuery(service snapshotService) *SnapshotQuery {
	return &SnapshotQuery{service: service}
}

var _ gocommand.Querier[SnapshotInput, SnapshotResult] = (*SnapshotQuery)(nil)

// Query resolves the full snapshot.
func (q *SnapshotQuery) Query(ctx context.Context, input SnapshotInput) (SnapshotResult, error) {
	snapshot, errs := q.service.SnapshotAll(ctx)
	return SnapshotResult{Snapshot: snapshot, Errors: errs}, nil
}
