package audit

import (
	"context"

	"gorm.io/gorm"
)

// Store persists audit run history.
type Store struct {
	db *gorm.DB
}

// NewStore creates a run-history store over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the run-history schema.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Run{})
}

// Save inserts one run record.
func (s *Store) Save(ctx context.Context, run *Run) error {
	return s.db.WithContext(ctx).Create(run).Error
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}

// Get returns one run by id. gorm.ErrRecordNotFound passes through for
// callers to map to a 404.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	if err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// Delete removes one run record by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&Run{}, "id = ?", id).Error
}
