// Package cards persists the rule-derived analysis for each card
// family so consistency checks and serving can read it back without
// re-running the analyzer.
package cards

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hkawai/cardfeature/internal/entities"
)

// Repository handles all card database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new cards repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert stores the analysis for a key, replacing any previous one.
func (r *Repository) Upsert(card *entities.Card) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"raw_text", "burst_text", "processed_text",
			"bits1", "bits2", "burst_bits", "updated_at",
		}),
	}).Create(card).Error
}

// Get returns the stored analysis for key, or gorm.ErrRecordNotFound.
func (r *Repository) Get(key string) (*entities.Card, error) {
	var card entities.Card
	if err := r.db.Where("key = ?", key).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// List returns all stored cards ordered by key.
func (r *Repository) List() ([]entities.Card, error) {
	var cards []entities.Card
	err := r.db.Order("key ASC").Find(&cards).Error
	return cards, err
}

// Delete removes the stored analysis for key and reports whether one
// existed.
func (r *Repository) Delete(key string) (bool, error) {
	result := r.db.Where("key = ?", key).Delete(&entities.Card{})
	return result.RowsAffected > 0, result.Error
}

// Count returns the number of stored cards.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Card{}).Count(&count).Error
	return count, err
}
