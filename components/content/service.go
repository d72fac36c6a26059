package content

import (
	"context"
	"errors"
	"fmt"
)

var (
	errMissingStore    = errors.New("content: resource store not configured")
	errInvalidResource = errors.New("content: resource code is required")
	errUnknownResource = errors.New("content: unknown resource")
	errSingletonOnly   = errors.New("content: operation requires a collection resource")
	// ErrRecordNotFound reports a lookup, update, or delete against an id
	// the store does not hold.
	ErrRecordNotFound = errors.New("content: record not found")
	// ErrVersionConflict reports a write whose version stamp no longer
	// matches the stored record. The write is rejected wholesale.
	ErrVersionConflict = errors.New("content: record version conflict")
	// ErrRecordInUse reports a delete blocked by records that still
	// reference the target.
	ErrRecordInUse = errors.New("content: record is referenced by other records")
	// ErrInvalidStatus reports a status value outside the resource's set.
	ErrInvalidStatus = errors.New("content: status not allowed for resource")
)

// Options configures the content Service. Every collaborator is provided via
// interface so applications can swap implementations without importing
// sibling packages.
type Options struct {
	Store       ResourceStore
	Resources   ResourceRegistry
	Validator   PayloadValidator
	RefreshHook RefreshHook
	Telemetry   Telemetry
}

// Service orchestrates CRUD over the resource catalog: schema validation,
// status enums, soft reference checks, ordering, version stamps, and change
// notification.
type Service struct {
	opts Options
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Resources == nil {
		opts.Resources = NewRegistry()
	}
	if opts.Validator == nil {
		opts.Validator = NewSchemaValidator()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// Resources exposes the registry backing the service.
func (s *Service) Resources() ResourceRegistry {
	return s.opts.Resources
}

// CreateRecordRequest captures the data required to create a record.
type CreateRecordRequest struct {
	Resource string
	Payload  map[string]any
}

// CreateRecord validates and stores a new record, assigning its position at
// the end of the collection unless the payload carries an explicit order.
func (s *Service) CreateRecord(ctx context.Context, req CreateRecordRequest) (Record, error) {
	store, def, err := s.resolve(req.Resource)
	if err != nil {
		return Record{}, err
	}
	payload := clonePayload(req.Payload)
	if err := s.validatePayload(ctx, def, payload); err != nil {
		return Record{}, err
	}
	rec := Record{
		Resource: def.Code,
		Version:  1,
		Payload:  payload,
	}
	if def.Orderable {
		if pos, ok := numericField(payload, "order"); ok {
			rec.Position = pos
		} else {
			count, err := store.Count(ctx, def.Code)
			if err != nil {
				return Record{}, fmt.Errorf("content: count %s: %w", def.Code, err)
			}
			rec.Position = count
			payload["order"] = count
		}
	}
	created, err := store.Create(ctx, rec)
	if err != nil {
		return Record{}, err
	}
	s.notify(ctx, RecordEvent{Resource: def.Code, Record: created, Reason: "create"})
	s.recordTelemetry(ctx, "content.record.create", map[string]any{
		"resource": def.Code,
		"id":       created.ID,
	})
	return created, nil
}

// UpdateRecordRequest captures an update. Payload keys are merged into the
// stored payload unless Replace is set; Version must match the stored
// record or the write fails with ErrVersionConflict. Version zero skips the
// check for callers that accept last-write-wins.
type UpdateRecordRequest struct {
	Payload map[string]any
	Version int64
	Replace bool
}

// UpdateRecord applies a full or partial update to an existing record.
func (s *Service) UpdateRecord(ctx context.Context, resource, id string, req UpdateRecordRequest) (Record, error) {
	store, def, err := s.resolve(resource)
	if err != nil {
		return Record{}, err
	}
	if id == "" {
		return Record{}, errors.New("content: record id is required")
	}
	current, err := store.Get(ctx, def.Code, id)
	if err != nil {
		return Record{}, err
	}
	if req.Version != 0 && req.Version != current.Version {
		return Record{}, fmt.Errorf("%w: %s/%s has version %d, write carried %d",
			ErrVersionConflict, def.Code, id, current.Version, req.Version)
	}
	next := current.Clone()
	if req.Replace {
		next.Payload = clonePayload(req.Payload)
	} else {
		for k, v := range req.Payload {
			next.Payload[k] = v
		}
	}
	if err := s.validatePayload(ctx, def, next.Payload); err != nil {
		return Record{}, err
	}
	if def.Orderable {
		if pos, ok := numericField(next.Payload, "order"); ok {
			next.Position = pos
		}
	}
	updated, err := store.Update(ctx, next)
	if err != nil {
		return Record{}, err
	}
	s.notify(ctx, RecordEvent{Resource: def.Code, Record: updated, Reason: "update"})
	s.recordTelemetry(ctx, "content.record.update", map[string]any{
		"resource": def.Code,
		"id":       id,
	})
	return updated, nil
}

// DeleteRecord removes a record after checking nothing else references it.
func (s *Service) DeleteRecord(ctx context.Context, resource, id string) error {
	store, def, err := s.resolve(resource)
	if err != nil {
		return err
	}
	if id == "" {
		return errors.New("content: record id is required")
	}
	target, err := store.Get(ctx, def.Code, id)
	if err != nil {
		return err
	}
	if err := s.checkInboundReferences(ctx, def, target); err != nil {
		return err
	}
	if err := store.Delete(ctx, def.Code, id); err != nil {
		return err
	}
	s.notify(ctx, RecordEvent{Resource: def.Code, Record: Record{ID: id, Resource: def.Code}, Reason: "delete"})
	s.recordTelemetry(ctx, "content.record.delete", map[string]any{
		"resource": def.Code,
		"id":       id,
	})
	return nil
}

// Collection lists a resource's records ordered by position.
func (s *Service) Collection(ctx context.Context, resource string) ([]Record, error) {
	store, def, err := s.resolve(resource)
	if err != nil {
		return nil, err
	}
	return store.List(ctx, def.Code)
}

// GetRecord fetches a single record by id.
func (s *Service) GetRecord(ctx context.Context, resource, id string) (Record, error) {
	store, def, err := s.resolve(resource)
	if err != nil {
		return Record{}, err
	}
	return store.Get(ctx, def.Code, id)
}

// Singleton returns the lone record of a singleton resource, creating an
// empty one on first access so callers always have something to edit.
func (s *Service) Singleton(ctx context.Context, resource string) (Record, error) {
	store, def, err := s.resolve(resource)
	if err != nil {
		return Record{}, err
	}
	if def.Kind != KindSingleton {
		return Record{}, fmt.Errorf("content: %s is not a singleton resource", def.Code)
	}
	records, err := store.List(ctx, def.Code)
	if err != nil {
		return Record{}, err
	}
	if len(records) > 0 {
		return records[0], nil
	}
	payload := map[string]any{}
	if len(def.Seed) > 0 {
		payload = clonePayload(def.Seed[0])
	}
	return store.Create(ctx, Record{Resource: def.Code, Version: 1, Payload: payload})
}

// UpdateSingleton merges the payload into the singleton record.
func (s *Service) UpdateSingleton(ctx context.Context, resource string, req UpdateRecordRequest) (Record, error) {
	current, err := s.Singleton(ctx, resource)
	if err != nil {
		return Record{}, err
	}
	return s.UpdateRecord(ctx, resource, current.ID, req)
}

// SeedCollection installs the definition's seed payloads. It only acts on an
// empty collection and reports how many records it created.
func (s *Service) SeedCollection(ctx context.Context, resource string) (int, error) {
	store, def, err := s.resolve(resource)
	if err != nil {
		return 0, err
	}
	if def.Kind == KindSingleton {
		return 0, fmt.Errorf("%w: %s", errSingletonOnly, def.Code)
	}
	count, err := store.Count(ctx, def.Code)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	var seedErr error
	created := 0
	for _, payload := range def.Seed {
		if _, err := s.CreateRecord(ctx, CreateRecordRequest{Resource: def.Code, Payload: clonePayload(payload)}); err != nil {
			seedErr = errors.Join(seedErr, err)
			continue
		}
		created++
	}
	s.recordTelemetry(ctx, "content.collection.seed", map[string]any{
		"resource": def.Code,
		"created":  created,
	})
	return created, seedErr
}

// SetStatus moves a record through its resource's status set.
func (s *Service) SetStatus(ctx context.Context, resource, id, status string) (Record, error) {
	_, def, err := s.resolve(resource)
	if err != nil {
		return Record{}, err
	}
	if def.StatusField == "" {
		return Record{}, fmt.Errorf("content: %s has no status field", def.Code)
	}
	if !contains(def.Statuses, status) {
		return Record{}, fmt.Errorf("%w: %q not in %v", ErrInvalidStatus, status, def.Statuses)
	}
	return s.UpdateRecord(ctx, resource, id, UpdateRecordRequest{
		Payload: map[string]any{def.StatusField: status},
	})
}

// SetActive flips a record's isActive flag, sending only that field.
func (s *Service) SetActive(ctx context.Context, resource, id string, active bool) (Record, error) {
	return s.UpdateRecord(ctx, resource, id, UpdateRecordRequest{
		Payload: map[string]any{"isActive": active},
	})
}

// SnapshotAll lists every catalog collection. Each resource is fetched
// independently; a failing resource is reported in errs while the others
// still land in the snapshot.
func (s *Service) SnapshotAll(ctx context.Context) (Snapshot, map[string]error) {
	snapshot := Snapshot{Collections: map[string][]Record{}}
	errs := map[string]error{}
	for _, def := range s.opts.Resources.Definitions() {
		records, err := s.Collection(ctx, def.Code)
		if err != nil {
			errs[def.Code] = err
			continue
		}
		snapshot.Collections[def.Code] = records
	}
	if len(errs) == 0 {
		return snapshot, nil
	}
	return snapshot, errs
}

// NotifyRecordChanged exposes refresh hook invocation for commands and
// transports.
func (s *Service) NotifyRecordChanged(ctx context.Context, event RecordEvent) error {
	if err := s.opts.RefreshHook.RecordChanged(ctx, event); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "content.record.event", map[string]any{
		"resource": event.Resource,
		"id":       event.Record.ID,
		"reason":   event.Reason,
	})
	return nil
}

func (s *Service) resolve(resource string) (ResourceStore, ResourceDefinition, error) {
	if s.opts.Store == nil {
		return nil, ResourceDefinition{}, errMissingStore
	}
	if resource == "" {
		return nil, ResourceDefinition{}, errInvalidResource
	}
	def, ok := s.opts.Resources.Definition(resource)
	if !ok {
		return nil, ResourceDefinition{}, fmt.Errorf("%w: %s", errUnknownResource, resource)
	}
	return s.opts.Store, def, nil
}

func (s *Service) validatePayload(ctx context.Context, def ResourceDefinition, payload map[string]any) error {
	if err := s.opts.Validator.Validate(def, payload); err != nil {
		return err
	}
	if def.StatusField != "" {
		if raw, ok := payload[def.StatusField]; ok {
			status, _ := raw.(string)
			if !contains(def.Statuses, status) {
				return fmt.Errorf("%w: %q not in %v", ErrInvalidStatus, status, def.Statuses)
			}
		}
	}
	return s.checkOutboundReferences(ctx, def, payload)
}

// checkOutboundReferences verifies soft foreign keys name existing targets,
// e.g. a flow line's endpoints must match map location names.
func (s *Service) checkOutboundReferences(ctx context.Context, def ResourceDefinition, payload map[string]any) error {
	if len(def.References) == 0 {
		return nil
	}
	for _, rule := range def.References {
		raw, ok := payload[rule.Field]
		if !ok {
			continue
		}
		value, _ := raw.(string)
		if value == "" {
			continue
		}
		targets, err := s.opts.Store.List(ctx, rule.Resource)
		if err != nil {
			return fmt.Errorf("content: resolve reference %s.%s: %w", def.Code, rule.Field, err)
		}
		found := false
		for _, target := range targets {
			if target.String(rule.TargetField) == value {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("content: %s.%s references missing %s %q", def.Code, rule.Field, rule.Resource, value)
		}
	}
	return nil
}

// checkInboundReferences blocks deleting a record other resources point at.
func (s *Service) checkInboundReferences(ctx context.Context, def ResourceDefinition, target Record) error {
	for _, other := range s.opts.Resources.Definitions() {
		for _, rule := range other.References {
			if rule.Resource != def.Code {
				continue
			}
			value := target.String(rule.TargetField)
			if value == "" {
				continue
			}
			records, err := s.opts.Store.List(ctx, other.Code)
			if err != nil {
				return fmt.Errorf("content: scan references from %s: %w", other.Code, err)
			}
			for _, rec := range records {
				if rec.String(rule.Field) == value {
					return fmt.Errorf("%w: %s %q is used by %s %s",
						ErrRecordInUse, def.Code, value, other.Code, rec.ID)
				}
			}
		}
	}
	return nil
}

func (s *Service) notify(ctx context.Context, event RecordEvent) {
	if err := s.opts.RefreshHook.RecordChanged(ctx, event); err != nil {
		s.recordTelemetry(ctx, "content.refresh_hook.error", map[string]any{
			"resource": event.Resource,
			"error":    err.Error(),
		})
	}
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func clonePayload(payload map[string]any) map[string]any {
	cloned := make(map[string]any, len(payload))
	for k, v := range payload {
		cloned[k] = v
	}
	return cloned
}

func numericField(payload map[string]any, field string) (int, bool) {
	switch v := payload[field].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type noopRefreshHook struct{}

func (noopRefreshHook) RecordChanged(context.Context, RecordEvent) error { return nil }
