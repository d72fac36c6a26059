package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// DeleteRecordInput identifies a record to remove.
type DeleteRecordInput struct {
	Resource string `json:"resource"`
	RecordID string `json:"record_id"`
	ActorID  string `json:"actor_id"`
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
}

type deleteService interface {
	DeleteRecord(ctx context.Context, resource, id string) error
}

// DeleteRecordCommand wraps Service.DeleteRecord.
type DeleteRecordCommand struct {
	service   deleteService
	telemetry Telemetry
}

// NewDeleteRecordCommand creates the command.
func NewDeleteRecordCommand(service deleteService, telemetry Telemetry) *DeleteRecordCommand {
	return &DeleteRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteRecordInput] = (*DeleteRecordCommand)(nil)

// Execute removes a record.
func (c *DeleteRecordCommand) Execute(ctx context.Context, msg DeleteRecordInput) error {
	if c.service == nil {
		return errors.New("delete command requires service")
	}
	if msg.Resource == "" {
		return errors.New("delete command requires resource")
	}
	if msg.RecordID == "" {
		return errors.New("delete command requires record id")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	if err := c.service.DeleteRecord(ctx, msg.Resource, msg.RecordID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.delete", map[string]any{
		"resource": msg.Resource,
		"id":       msg.RecordID,
	})
	return nil
}
