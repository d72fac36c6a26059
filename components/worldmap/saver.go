package worldmap

import (
	"context"
	"fmt"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// LocationWriter is the slice of the content service the saver needs.
type LocationWriter interface {
	GetRecord(ctx context.Context, resource, id string) (content.Record, error)
	UpdateRecord(ctx context.Context, resource, id string, req content.UpdateRecordRequest) (content.Record, error)
}

// ContentSaver persists marker coordinates through the content service as a
// partial update carrying only the two axes, guarded by the record version.
type ContentSaver struct {
	Writer LocationWriter
}

// SaveCoordinates writes the clamped position onto the map location record.
func (s ContentSaver) SaveCoordinates(ctx context.Context, locationID string, p Point) error {
	if s.Writer == nil {
		return fmt.Errorf("worldmap: location writer is required")
	}
	p = ClampPercent(p)
	current, err := s.Writer.GetRecord(ctx, content.ResourceMapLocations, locationID)
	if err != nil {
		return err
	}
	_, err = s.Writer.UpdateRecord(ctx, content.ResourceMapLocations, locationID, content.UpdateRecordRequest{
		Payload: map[string]any{"x": p.X, "y": p.Y},
		Version: current.Version,
	})
	return err
}

var _ CoordinateSaver = ContentSaver{}
