package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// SeedCollectionInput names the collection to seed. Empty resource seeds the
// whole catalog.
type SeedCollectionInput struct {
	Resource string `json:"resource"`
}

type seedService interface {
	SeedCollection(ctx context.Context, resource string) (int, error)
	SeedAll(ctx context.Context) (int, error)
}

// SeedCollectionCommand installs seed defaults into empty collections.
type SeedCollectionCommand struct {
	service   seedService
	telemetry Telemetry
}

// NewSeedCollectionCommand wires dependencies.
func NewSeedCollectionCommand(service seedService, telemetry Telemetry) *SeedCollectionCommand {
	return &SeedCollectionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SeedCollectionInput] = (*SeedCollectionCommand)(nil)

// Execute seeds one collection, or every empty one when no resource is named.
func (c *SeedCollectionCommand) Execute(ctx context.Context, msg SeedCollectionInput) error {
	if c.service == nil {
		return errors.New("seed command requires service")
	}
	var (
		created int
		err     error
	)
	if msg.Resource == "" {
		created, err = c.service.SeedAll(ctx)
	} else {
		created, err = c.service.SeedCollection(ctx, msg.Resource)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.seed", map[string]any{
		"resource": msg.Resource,
		"created":  created,
	})
	return nil
}
