package usersink

import (
	"context"
	"fmt"

	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"

	"github.com/onebuyai/go-sitecms/pkg/activity"
)

// Sink stores activity records, typically go-users' activity log.
type Sink interface {
	Log(ctx context.Context, record types.ActivityRecord) error
}

// Hook maps activity events onto go-users activity records.
type Hook struct {
	Sink Sink
}

// Notify converts and forwards the event. Events without a verb or object
// identity are skipped; actor/user/tenant ids must be UUIDs when present.
func (h Hook) Notify(ctx context.Context, evt activity.Event) error {
	if h.Sink == nil {
		return nil
	}
	normalized := activity.NormalizeEvent(evt)
	if normalized.Verb == "" || normalized.ObjectType == "" || normalized.ObjectID == "" {
		return nil
	}
	record := types.ActivityRecord{
		Verb:       normalized.Verb,
		ObjectType: normalized.ObjectType,
		ObjectID:   normalized.ObjectID,
		Channel:    normalized.Channel,
		OccurredAt: normalized.OccurredAt,
	}
	var err error
	if record.ActorID, err = parseID(normalized.ActorID); err != nil {
		return fmt.Errorf("usersink: actor id: %w", err)
	}
	if record.UserID, err = parseID(normalized.UserID); err != nil {
		return fmt.Errorf("usersink: user id: %w", err)
	}
	if record.TenantID, err = parseID(normalized.TenantID); err != nil {
		return fmt.Errorf("usersink: tenant id: %w", err)
	}
	record.Data = buildData(normalized)
	return h.Sink.Log(ctx, record)
}

func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func buildData(evt activity.Event) map[string]any {
	data := make(map[string]any, len(evt.Metadata)+2)
	for k, v := range evt.Metadata {
		data[k] = v
	}
	if evt.DefinitionCode != "" {
		data["definition_code"] = evt.DefinitionCode
	}
	if len(evt.Recipients) > 0 {
		data["recipients"] = evt.Recipients
	}
	if len(data) == 0 {
		return nil
	}
	return data
}
