package worldmap

import (
	"context"
	"errors"
	"testing"

	content "github.com/onebuyai/go-sitecms/components/content"
)

type fakeLocationWriter struct {
	record     content.Record
	getErr     error
	lastID     string
	lastUpdate content.UpdateRecordRequest
}

func (f *fakeLocationWriter) GetRecord(_ context.Context, resource, id string) (content.Record, error) {
	if f.getErr != nil {
		return content.Record{}, f.getErr
	}
	return f.record, nil
}

func (f *fakeLocationWriter) UpdateRecord(_ context.Context, resource, id string, req content.UpdateRecordRequest) (content.Record, error) {
	f.lastID = id
	f.lastUpdate = req
	return f.record, nil
}

func TestSaveCoordinatesSendsPartialVersionedUpdate(t *testing.T) {
	writer := &fakeLocationWriter{
		record: content.Record{
			ID:       "loc-1",
			Resource: content.ResourceMapLocations,
			Version:  6,
			Payload:  map[string]any{"name": "Rotterdam", "x": 44.0, "y": 28.0},
		},
	}
	saver := ContentSaver{Writer: writer}

	if err := saver.SaveCoordinates(context.Background(), "loc-1", Point{X: 52.5, Y: 31}); err != nil {
		t.Fatalf("SaveCoordinates returned error: %v", err)
	}
	if writer.lastID != "loc-1" {
		t.Fatalf("expected loc-1 updated, got %s", writer.lastID)
	}
	if writer.lastUpdate.Version != 6 {
		t.Fatalf("expected read version forwarded, got %d", writer.lastUpdate.Version)
	}
	if len(writer.lastUpdate.Payload) != 2 {
		t.Fatalf("expected only the two axes in payload, got %#v", writer.lastUpdate.Payload)
	}
	if writer.lastUpdate.Payload["x"] != 52.5 || writer.lastUpdate.Payload["y"] != 31.0 {
		t.Fatalf("expected coordinates in payload, got %#v", writer.lastUpdate.Payload)
	}
	if writer.lastUpdate.Replace {
		t.Fatalf("coordinate save must merge, not replace")
	}
}

func TestSaveCoordinatesClampsBeforeWriting(t *testing.T) {
	writer := &fakeLocationWriter{record: content.Record{ID: "loc-1", Version: 1}}
	saver := ContentSaver{Writer: writer}
	if err := saver.SaveCoordinates(context.Background(), "loc-1", Point{X: -10, Y: 140}); err != nil {
		t.Fatalf("SaveCoordinates returned error: %v", err)
	}
	if writer.lastUpdate.Payload["x"] != 0.0 || writer.lastUpdate.Payload["y"] != 100.0 {
		t.Fatalf("expected clamped coordinates, got %#v", writer.lastUpdate.Payload)
	}
}

func TestSaveCoordinatesSurfacesReadError(t *testing.T) {
	writer := &fakeLocationWriter{getErr: errors.New("record missing")}
	saver := ContentSaver{Writer: writer}
	if err := saver.SaveCoordinates(context.Background(), "loc-404", Point{}); err == nil {
		t.Fatalf("expected read error to propagate")
	}
	if writer.lastID != "" {
		t.Fatalf("failed read must not trigger an update")
	}
}
