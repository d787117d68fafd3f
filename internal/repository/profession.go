package repository

import (
	"context"

	"chesnokuz/internal/models"

	"gorm.io/gorm"
)

// ProfessionRepository defines the interface for profession data operations
type ProfessionRepository interface {
	Create(ctx context.Context, profession *models.Profession) error
	GetByID(ctx context.Context, id uint) (*models.Profession, error)
	List(ctx context.Context) ([]models.Profession, error)
}

type professionRepository struct {
	db *gorm.DB
}

// NewProfessionRepository creates a new profession repository
func NewProfessionRepository(db *gorm.DB) ProfessionRepository {
	return &professionRepository{db: db}
}

func (r *professionRepository) Create(ctx context.Context, profession *models.Profession) error {
	if err := r.db.WithContext(ctx).Create(profession).Error; err != nil {
		return translate(err, "Profession")
	}
	return nil
}

func (r *professionRepository) GetByID(ctx context.Context, id uint) (*models.Profession, error) {
	var profession models.Profession
	if err := r.db.WithContext(ctx).First(&profession, id).Error; err != nil {
		return nil, translate(err, "Profession")
	}
	return &profession, nil
}

func (r *professionRepository) List(ctx context.Context) ([]models.Profession, error) {
	professions := []models.Profession{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&professions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return professions, nil
}
