package content

import (
	"context"
	"time"
)

// ResourceKind distinguishes list-shaped resources from singletons such as
// the hero section or site settings.
type ResourceKind string

const (
	// KindCollection is an ordered list of records addressed by id.
	KindCollection ResourceKind = "collection"
	// KindSingleton is a single record without an id segment in its path.
	KindSingleton ResourceKind = "singleton"
)

// ResourceDefinition describes one content resource managed by the service.
type ResourceDefinition struct {
	Code        string
	Name        string
	Description string
	// Path is the REST path relative to the API base, e.g. "site-stats" or
	// "careers/applications".
	Path string
	Kind ResourceKind
	// Schema is a JSON schema validated against every write. Required
	// entries carry the presence checks the admin forms rely on.
	Schema map[string]any
	// StatusField names a payload field restricted to the Statuses set.
	StatusField string
	Statuses    []string
	// Orderable resources get a position assigned on create and sorted lists.
	Orderable bool
	// References declares soft foreign keys whose targets must exist on
	// write and block deletion of the record they point at.
	References []ReferenceRule
	// Seed holds the default payloads installed by the seed endpoint when
	// the collection is empty.
	Seed []map[string]any
}

// ReferenceRule ties a payload field to a field on another resource.
type ReferenceRule struct {
	Field       string
	Resource    string
	TargetField string
}

// Record is a stored content entry. Payload carries the entity fields; the
// envelope carries identity, ordering, and the optimistic-concurrency stamp.
type Record struct {
	ID        string         `json:"id"`
	Resource  string         `json:"resource"`
	Position  int            `json:"position"`
	Version   int64          `json:"version"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ResourceStore persists records. Implementations ensure thread safety;
// Update must be guarded by the record version.
type ResourceStore interface {
	List(ctx context.Context, resource string) ([]Record, error)
	Get(ctx context.Context, resource, id string) (Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
	Delete(ctx context.Context, resource, id string) error
	Count(ctx context.Context, resource string) (int, error)
}

// ResourceRegistry stores resource definitions discoverable via hooks or
// manifests.
type ResourceRegistry interface {
	RegisterDefinition(def ResourceDefinition) error
	Definition(code string) (ResourceDefinition, bool)
	Definitions() []ResourceDefinition
}

// RefreshHook notifies transports (REST/WebSocket/SSE) about record changes.
type RefreshHook interface {
	RecordChanged(ctx context.Context, event RecordEvent) error
}

// RecordEvent describes changes that transports might care about.
type RecordEvent struct {
	Resource string
	Record   Record
	Reason   string
}

// Snapshot holds one fetched collection per resource, keyed by code.
type Snapshot struct {
	Collections map[string][]Record
}

// Clone returns a deep copy of the record so callers can mutate payloads
// without touching store state.
func (r Record) Clone() Record {
	cloned := r
	if r.Payload != nil {
		cloned.Payload = make(map[string]any, len(r.Payload))
		for k, v := range r.Payload {
			cloned.Payload[k] = v
		}
	}
	return cloned
}

// String returns a payload field as a string, or "" when absent.
func (r Record) String(field string) string {
	if s, ok := r.Payload[field].(string); ok {
		return s
	}
	return ""
}

// Bool returns a payload field as a bool, false when absent.
func (r Record) Bool(field string) bool {
	b, _ := r.Payload[field].(bool)
	return b
}

// Float returns a numeric payload field. JSON decoding yields float64; int
// values set programmatically are handled too.
func (r Record) Float(field string) (float64, bool) {
	switch v := r.Payload[field].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
