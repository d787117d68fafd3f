package repository

import (
	"context"

	"chesnokuz/internal/models"

	"gorm.io/gorm"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id uint) (*models.Media, error)
	List(ctx context.Context) ([]models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	Delete(ctx context.Context, id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return translate(err, "Media")
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, translate(err, "Media")
	}
	return &media, nil
}

func (r *mediaRepository) List(ctx context.Context) ([]models.Media, error) {
	items := []models.Media{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *mediaRepository) Update(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Save(media).Error; err != nil {
		return translate(err, "Media")
	}
	return nil
}

// Delete removes the media item and any post links pointing at it.
func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var media models.Media
		if err := tx.First(&media, id).Error; err != nil {
			return err
		}
		if err := tx.Where("media_id = ?", id).Delete(&models.PostMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Media{}, id).Error
	})
	return translate(err, "Media")
}
