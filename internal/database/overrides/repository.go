// Package overrides provides database operations for feature override
// management.
//
// This package implements the OverrideStore interface defined in
// internal/http/overrides.go.
//
// # Usage
//
//	repo := overrides.NewRepository(db)
//	err := repo.Upsert(&entities.FeatureOverride{Key: "firebat", FixedBits1: 1 << 5})
package overrides

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hkawai/cardfeature/internal/entities"
)

// Repository handles all override database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new overrides repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the record or, when the key already exists, replaces
// its fields and bumps updated_at. Runs as a single ON CONFLICT
// statement so it stays correct under concurrent retries; calling it
// twice with identical content leaves one record.
func (r *Repository) Upsert(record *entities.FeatureOverride) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fixed_bits1", "fixed_bits2", "fixed_burst_bits", "note", "updated_at",
		}),
	}).Create(record).Error
}

// Get returns the record for key, or gorm.ErrRecordNotFound.
func (r *Repository) Get(key string) (*entities.FeatureOverride, error) {
	var record entities.FeatureOverride
	if err := r.db.Where("key = ?", key).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all override records ordered by key.
func (r *Repository) List() ([]entities.FeatureOverride, error) {
	var records []entities.FeatureOverride
	err := r.db.Order("key ASC").Find(&records).Error
	return records, err
}

// Delete removes the record for key and reports whether one existed.
func (r *Repository) Delete(key string) (bool, error) {
	result := r.db.Where("key = ?", key).Delete(&entities.FeatureOverride{})
	return result.RowsAffected > 0, result.Error
}

// Count returns the number of override records.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.FeatureOverride{}).Count(&count).Error
	return count, err
}
