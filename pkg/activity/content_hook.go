package activity

import (
	"context"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// RecordAudit adapts content record events into activity events so admin
// edits land in the audit trail. It satisfies content.RefreshHook.
type RecordAudit struct {
	Emitter *Emitter
}

// RecordChanged emits an audit event for the mutation.
func (a RecordAudit) RecordChanged(ctx context.Context, event content.RecordEvent) error {
	if a.Emitter == nil {
		return nil
	}
	meta := content.ActivityFrom(ctx)
	return a.Emitter.Emit(ctx, Event{
		Verb:           event.Reason,
		ActorID:        meta.ActorID,
		UserID:         meta.UserID,
		TenantID:       meta.TenantID,
		ObjectType:     event.Resource,
		ObjectID:       event.Record.ID,
		DefinitionCode: event.Resource + ":" + event.Reason,
	})
}
