package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// SetActiveInput flips a record's isActive flag.
type SetActiveInput struct {
	Resource string `json:"resource"`
	RecordID string `json:"record_id"`
	Active   bool   `json:"active"`
	ActorID  string `json:"actor_id"`
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
}

type activeService interface {
	SetActive(ctx context.Context, resource, id string, active bool) (content.Record, error)
}

// SetActiveCommand wraps Service.SetActive. Only the single flag field goes
// over the wire, matching the testimonials and news-query toggles.
type SetActiveCommand struct {
	service   activeService
	telemetry Telemetry
}

// NewSetActiveCommand creates the command.
func NewSetActiveCommand(service activeService, telemetry Telemetry) *SetActiveCommand {
	return &SetActiveCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetActiveInput] = (*SetActiveCommand)(nil)

// Execute toggles the record's active flag.
func (c *SetActiveCommand) Execute(ctx context.Context, msg SetActiveInput) error {
	if c.service == nil {
		return errors.New("active command requires service")
	}
	if msg.Resource == "" || msg.RecordID == "" {
		return errors.New("active command requires resource and record id")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	if _, err := c.service.SetActive(ctx, msg.Resource, msg.RecordID, msg.Active); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.active", map[string]any{
		"resource": msg.Resource,
		"id":       msg.RecordID,
		"active":   msg.Active,
	})
	return nil
}
