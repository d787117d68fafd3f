package repository

import (
	"context"
	"time"

	"chesnokuz/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository tracks devices and their likes on posts.
type EngagementRepository interface {
	FindOrCreateDevice(ctx context.Context, userAgent string) (*models.Device, error)
	Like(ctx context.Context, deviceID, postID uint) (bool, error)
	Unlike(ctx context.Context, deviceID, postID uint) (bool, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// FindOrCreateDevice resolves a device row by user-agent, creating it on
// first sight and refreshing last_active either way.
func (r *engagementRepository) FindOrCreateDevice(ctx context.Context, userAgent string) (*models.Device, error) {
	device := models.Device{UserAgent: userAgent, LastActive: time.Now().UTC()}
	err := r.db.WithContext(ctx).
		Where("user_agent = ?", userAgent).
		FirstOrCreate(&device).Error
	if err != nil {
		// Concurrent first sight: the unique index rejects one insert, the
		// winning row is there to read back.
		if isUniqueViolation(err) {
			if err := r.db.WithContext(ctx).Where("user_agent = ?", userAgent).First(&device).Error; err != nil {
				return nil, translate(err, "Device")
			}
		} else {
			return nil, translate(err, "Device")
		}
	}

	if err := r.db.WithContext(ctx).Model(&models.Device{}).Where("id = ?", device.ID).
		UpdateColumn("last_active", time.Now().UTC()).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &device, nil
}

// Like records a like for the device/post pair. It returns false when the
// pair already exists; likes_count only moves when a row was inserted.
func (r *engagementRepository) Like(ctx context.Context, deviceID, postID uint) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{DeviceID: deviceID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		liked = true
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		return false, translate(err, "Post")
	}
	return liked, nil
}

// Unlike removes a like if present. Returns false when there was nothing to
// remove.
func (r *engagementRepository) Unlike(ctx context.Context, deviceID, postID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		res := tx.Where("device_id = ? AND post_id = ?", deviceID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
	})
	if err != nil {
		return false, translate(err, "Post")
	}
	return removed, nil
}
