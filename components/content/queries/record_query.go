package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// RecordInput identifies a single record. An empty RecordID targets the
// singleton record of singleton resources.
type RecordInput struct {
	Resource string
	RecordID string
}

type recordService interface {
	GetRecord(ctx context.Context, resource, id string) (content.Record, error)
	Singleton(ctx context.Context, resource string) (content.Record, error)
}

// RecordQuery fetches one record by id, or the singleton.
type RecordQuery struct {
	service recordService
}

// NewRecordQuery builds the query.
func NewRecordQuery(service recordService) *RecordQuery {
	return &RecordQuery{service: service}
}

var _ gocommand.Querier[RecordInput, content.Record] = (*RecordQuery)(nil)

// Query resolves the record.
func (q *RecordQuery) Query(ctx context.Context, input RecordInput) (content.Record, error) {
	if input.RecordID == "" {
		return q.service.Singleton(ctx, input.Resource)
	}
	return q.service.GetRecord(ctx, input.Resource, input.RecordID)
}
