package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// SetStatusInput moves a record through its resource's status set.
type SetStatusInput struct {
	Resource string `json:"resource"`
	RecordID string `json:"record_id"`
	Status   string `json:"status"`
	ActorID  string `json:"actor_id"`
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
}

type statusService interface {
	SetStatus(ctx context.Context, resource, id, status string) (content.Record, error)
}

// SetStatusCommand wraps Service.SetStatus.
type SetStatusCommand struct {
	service   statusService
	telemetry Telemetry
}

// NewSetStatusCommand creates the command.
func NewSetStatusCommand(service statusService, telemetry Telemetry) *SetStatusCommand {
	return &SetStatusCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetStatusInput] = (*SetStatusCommand)(nil)

// Execute updates the record's status field.
func (c *SetStatusCommand) Execute(ctx context.Context, msg SetStatusInput) error {
	if c.service == nil {
		return errors.New("status command requires service")
	}
	if msg.Resource == "" || msg.RecordID == "" {
		return errors.New("status command requires resource and record id")
	}
	if msg.Status == "" {
		return errors.New("status command requires status value")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	if _, err := c.service.SetStatus(ctx, msg.Resource, msg.RecordID, msg.Status); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.status", map[string]any{
		"resource": msg.Resource,
		"id":       msg.RecordID,
		"status":   msg.Status,
	})
	return nil
}
