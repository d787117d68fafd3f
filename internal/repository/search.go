package repository

import (
	"context"
	"strings"

	"chesnokuz/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SearchRepository records and reports user lookup terms.
type SearchRepository interface {
	RecordTerm(ctx context.Context, term string) error
	List(ctx context.Context) ([]models.UserSearch, error)
}

type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new search term repository
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// RecordTerm upserts the normalized term, bumping its count on conflict.
// Terms are lowercased and truncated to the column width before writing.
func (r *searchRepository) RecordTerm(ctx context.Context, term string) error {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	if len(term) > 50 {
		term = term[:50]
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "term"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("user_searches.count + 1")}),
		}).
		Create(&models.UserSearch{Term: term, Count: 1}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List returns all recorded terms, most searched first.
func (r *searchRepository) List(ctx context.Context) ([]models.UserSearch, error) {
	terms := []models.UserSearch{}
	err := r.db.WithContext(ctx).
		Order("count DESC").Order("term ASC").
		Find(&terms).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return terms, nil
}
