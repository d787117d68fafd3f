package repository

import (
	"context"
	"strings"

	"chesnokuz/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context, isActive *bool) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err, "User")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Profession").First(&user, id).Error; err != nil {
		return nil, translate(err, "User")
	}
	return &user, nil
}

// GetByName performs the fuzzy first-name lookup: case-insensitive substring
// match with lowest-id tie-break.
func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.WithContext(ctx).
		Preload("Profession").
		Where("LOWER(first_name) LIKE ?", pattern).
		Order("id ASC").
		First(&user).Error
	if err != nil {
		return nil, translate(err, "User")
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, isActive *bool) ([]models.User, error) {
	users := []models.User{}
	q := r.db.WithContext(ctx)
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}
	if err := q.Order("id DESC").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translate(err, "User")
	}
	return nil
}

// Delete removes the user with all owned rows: comments authored by the user,
// then every owned post with its dependents, in a single transaction.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		ownedPosts := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("post_id IN (?)", ownedPosts).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", ownedPosts).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", ownedPosts).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", ownedPosts).Delete(&models.PostMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	return translate(err, "User")
}
