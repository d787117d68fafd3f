package repository

import (
	"context"
	"errors"
	"strings"

	"chesnokuz/internal/cache"
	"chesnokuz/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return translate(err, "Category")
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err, "Category")
	}
	return &category, nil
}

// GetBySlug resolves a category by slug with the same exact-then-fuzzy
// strategy posts use. Only exact hits flow through the cache.
func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category

	loadExact := func() error {
		return r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	}

	err := cache.Aside(ctx, cache.CategoryKey(slug), &category, cache.CategoryTTL, loadExact)
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err, "Category")
	}

	pattern := "%" + strings.ToLower(slug) + "%"
	err = r.db.WithContext(ctx).
		Where("LOWER(slug) LIKE ?", pattern).
		Order("id ASC").
		First(&category).Error
	if err != nil {
		return nil, translate(err, "Category")
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return translate(err, "Category")
	}
	cache.InvalidateCategory(ctx, category.Slug)
	return nil
}

// Delete removes the category and detaches its posts by nulling their
// category_id. Posts survive the category.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		slug = category.Slug

		if err := tx.Model(&models.Post{}).Where("category_id = ?", id).
			UpdateColumn("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return translate(err, "Category")
	}
	cache.InvalidateCategory(ctx, slug)
	return nil
}
