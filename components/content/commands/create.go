package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// CreateRecordInput captures record creation payloads.
type CreateRecordInput struct {
	Resource string         `json:"resource"`
	Payload  map[string]any `json:"payload"`
	ActorID  string         `json:"actor_id"`
	UserID   string         `json:"user_id"`
	TenantID string         `json:"tenant_id"`
}

type createService interface {
	CreateRecord(ctx context.Context, req content.CreateRecordRequest) (content.Record, error)
}

// CreateRecordCommand wraps Service.CreateRecord.
type CreateRecordCommand struct {
	service   createService
	telemetry Telemetry
}

// NewCreateRecordCommand creates the command.
func NewCreateRecordCommand(service createService, telemetry Telemetry) *CreateRecordCommand {
	return &CreateRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CreateRecordInput] = (*CreateRecordCommand)(nil)

// Execute validates and stores a new record.
func (c *CreateRecordCommand) Execute(ctx context.Context, msg CreateRecordInput) error {
	if c.service == nil {
		return errors.New("create command requires service")
	}
	if msg.Resource == "" {
		return errors.New("create command requires resource")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	created, err := c.service.CreateRecord(ctx, content.CreateRecordRequest{
		Resource: msg.Resource,
		Payload:  msg.Payload,
	})
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.create", map[string]any{
		"resource": msg.Resource,
		"id":       created.ID,
	})
	return nil
}
