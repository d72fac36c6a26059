package worldmap

import (
	"context"
	"errors"
	"fmt"
)

// CoordinateSaver persists a marker's coordinates. Implementations send a
// single partial update carrying only the two axes.
type CoordinateSaver interface {
	SaveCoordinates(ctx context.Context, locationID string, p Point) error
}

// Editor runs marker drag sessions against a container's pixel geometry.
// Nothing is persisted while the pointer moves; release issues one save.
type Editor struct {
	saver CoordinateSaver

	originX, originY float64
	width, height    float64

	dragID  string
	current Point
}

// NewEditor builds an editor for a container at the given pixel origin/size.
func NewEditor(saver CoordinateSaver, originX, originY, width, height float64) (*Editor, error) {
	if saver == nil {
		return nil, errors.New("worldmap: coordinate saver is required")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("worldmap: container size %gx%g is not positive", width, height)
	}
	return &Editor{
		saver:   saver,
		originX: originX,
		originY: originY,
		width:   width,
		height:  height,
	}, nil
}

// BeginDrag starts a drag session for a marker.
func (e *Editor) BeginDrag(locationID string, start Point) error {
	if locationID == "" {
		return errors.New("worldmap: location id is required")
	}
	if e.dragID != "" {
		return fmt.Errorf("worldmap: drag already in progress for %s", e.dragID)
	}
	e.dragID = locationID
	e.current = ClampPercent(start)
	return nil
}

// Move updates the in-flight position from pointer pixel coordinates.
func (e *Editor) Move(pointerX, pointerY float64) (Point, error) {
	if e.dragID == "" {
		return Point{}, errors.New("worldmap: no drag in progress")
	}
	e.current = PointFromPointer(pointerX, pointerY, e.originX, e.originY, e.width, e.height)
	return e.current, nil
}

// Release ends the session and persists the final clamped position.
func (e *Editor) Release(ctx context.Context) (Point, error) {
	if e.dragID == "" {
		return Point{}, errors.New("worldmap: no drag in progress")
	}
	id := e.dragID
	final := e.current
	e.dragID = ""
	if err := e.saver.SaveCoordinates(ctx, id, final); err != nil {
		return final, fmt.Errorf("worldmap: save %s: %w", id, err)
	}
	return final, nil
}

// Cancel abandons the session without persisting.
func (e *Editor) Cancel() {
	e.dragID = ""
}
