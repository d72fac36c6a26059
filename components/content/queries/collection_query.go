package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// CollectionInput identifies a collection to list.
type CollectionInput struct {
	Resource string
}

type collectionService interface {
	Collection(ctx context.Context, resource string) ([]content.Record, error)
}

// CollectionQuery lists a resource's records ordered by position.
type CollectionQuery struct {
	service collectionService
}

// NewCollectionQuery builds the query.
func NewCollectionQuery(service collectionService) *CollectionQuery {
	return &CollectionQuery{service: service}
}

var _ gocommand.Querier[CollectionInput, []content.Record] = (*CollectionQuery)(nil)

// Query fetches the collection.
func (q *CollectionQuery) Query(ctx context.Context, input CollectionInput) ([]content.Record, error) {
	return q.service.Collection(ctx, input.Resource)
}
