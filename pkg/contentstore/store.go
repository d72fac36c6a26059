package contentstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// recordModel is the single generic table behind every content resource.
// Payload holds the entity fields as a JSON document; the columns carry the
// envelope the service needs for ordering and conflict detection.
type recordModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Resource  string `gorm:"index;size:64;not null"`
	Position  int
	Version   int64  `gorm:"not null;default:1"`
	Payload   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (recordModel) TableName() string { return "records" }

// Store is a GORM-backed ResourceStore.
type Store struct {
	db *gorm.DB
}

var _ content.ResourceStore = (*Store)(nil)

// Open creates a sqlite-backed store at the given path and migrates the
// records table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("contentstore: open %s: %w", path, err)
	}
	return New(db)
}

// New wraps an existing gorm handle, migrating the records table.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("contentstore: db handle is required")
	}
	if err := db.AutoMigrate(&recordModel{}); err != nil {
		return nil, fmt.Errorf("contentstore: migrate records: %w", err)
	}
	return &Store{db: db}, nil
}

// List returns a resource's records ordered by position, then creation time.
func (s *Store) List(ctx context.Context, resource string) ([]content.Record, error) {
	var models []recordModel
	err := s.db.WithContext(ctx).
		Where("resource = ?", resource).
		Order("position asc, created_at asc").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("contentstore: list %s: %w", resource, err)
	}
	records := make([]content.Record, 0, len(models))
	for _, model := range models {
		rec, err := model.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Get fetches a single record by id.
func (s *Store) Get(ctx context.Context, resource, id string) (content.Record, error) {
	var model recordModel
	err := s.db.WithContext(ctx).
		Where("resource = ? AND id = ?", resource, id).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return content.Record{}, fmt.Errorf("%w: %s/%s", content.ErrRecordNotFound, resource, id)
	}
	if err != nil {
		return content.Record{}, fmt.Errorf("contentstore: get %s/%s: %w", resource, id, err)
	}
	return model.toRecord()
}

// Create stores a new record, assigning id and timestamps.
func (s *Store) Create(ctx context.Context, rec content.Record) (content.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Version == 0 {
		rec.Version = 1
	}
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return content.Record{}, fmt.Errorf("contentstore: encode payload: %w", err)
	}
	model := recordModel{
		ID:       rec.ID,
		Resource: rec.Resource,
		Position: rec.Position,
		Version:  rec.Version,
		Payload:  string(payload),
	}
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return content.Record{}, fmt.Errorf("contentstore: create %s: %w", rec.Resource, err)
	}
	return model.toRecord()
}

// Update replaces payload and position guarded by the version column: the
// write only lands when the stored version still matches, and bumps it.
func (s *Store) Update(ctx context.Context, rec content.Record) (content.Record, error) {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return content.Record{}, fmt.Errorf("contentstore: encode payload: %w", err)
	}
	res := s.db.WithContext(ctx).
		Model(&recordModel{}).
		Where("resource = ? AND id = ? AND version = ?", rec.Resource, rec.ID, rec.Version).
		Updates(map[string]any{
			"payload":  string(payload),
			"position": rec.Position,
			"version":  rec.Version + 1,
		})
	if res.Error != nil {
		return content.Record{}, fmt.Errorf("contentstore: update %s/%s: %w", rec.Resource, rec.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Zero rows means either the record is gone or another writer
		// bumped the version first.
		current, err := s.Get(ctx, rec.Resource, rec.ID)
		if err != nil {
			return content.Record{}, err
		}
		return content.Record{}, fmt.Errorf("%w: %s/%s stored %d, write carried %d",
			content.ErrVersionConflict, rec.Resource, rec.ID, current.Version, rec.Version)
	}
	return s.Get(ctx, rec.Resource, rec.ID)
}

// Delete removes a record. Deleting an absent record returns ErrRecordNotFound.
func (s *Store) Delete(ctx context.Context, resource, id string) error {
	res := s.db.WithContext(ctx).
		Where("resource = ? AND id = ?", resource, id).
		Delete(&recordModel{})
	if res.Error != nil {
		return fmt.Errorf("contentstore: delete %s/%s: %w", resource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s/%s", content.ErrRecordNotFound, resource, id)
	}
	return nil
}

// Count reports how many records a resource holds.
func (s *Store) Count(ctx context.Context, resource string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&recordModel{}).
		Where("resource = ?", resource).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("contentstore: count %s: %w", resource, err)
	}
	return int(count), nil
}

func (m recordModel) toRecord() (content.Record, error) {
	payload := map[string]any{}
	if m.Payload != "" {
		if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
			return content.Record{}, fmt.Errorf("contentstore: decode payload %s/%s: %w", m.Resource, m.ID, err)
		}
	}
	return content.Record{
		ID:        m.ID,
		Resource:  m.Resource,
		Position:  m.Position,
		Version:   m.Version,
		Payload:   payload,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
