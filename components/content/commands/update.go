package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// UpdateRecordInput captures record update payloads. Version carries the
// optimistic-concurrency stamp the caller read; zero skips the check.
type UpdateRecordInput struct {
	Resource string         `json:"resource"`
	RecordID string         `json:"record_id"`
	Payload  map[string]any `json:"payload"`
	Version  int64          `json:"version"`
	Replace  bool           `json:"replace"`
	ActorID  string         `json:"actor_id"`
	UserID   string         `json:"user_id"`
	TenantID string         `json:"tenant_id"`
}

type updateService interface {
	UpdateRecord(ctx context.Context, resource, id string, req content.UpdateRecordRequest) (content.Record, error)
}

// UpdateRecordCommand wraps Service.UpdateRecord.
type UpdateRecordCommand struct {
	service   updateService
	telemetry Telemetry
}

// NewUpdateRecordCommand creates the command.
func NewUpdateRecordCommand(service updateService, telemetry Telemetry) *UpdateRecordCommand {
	return &UpdateRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateRecordInput] = (*UpdateRecordCommand)(nil)

// Execute applies a full or partial record update.
func (c *UpdateRecordCommand) Execute(ctx context.Context, msg UpdateRecordInput) error {
	if c.service == nil {
		return errors.New("update command requires service")
	}
	if msg.Resource == "" {
		return errors.New("update command requires resource")
	}
	if msg.RecordID == "" {
		return errors.New("update command requires record id")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	if _, err := c.service.UpdateRecord(ctx, msg.Resource, msg.RecordID, content.UpdateRecordRequest{
		Payload: msg.Payload,
		Version: msg.Version,
		Replace: msg.Replace,
	}); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.update", map[string]any{
		"resource": msg.Resource,
		"id":       msg.RecordID,
	})
	return nil
}
