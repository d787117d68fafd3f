package service

import (
	"context"
	"strings"

	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"
)

// TaxonomyInput is the shared payload for category and tag writes: a display
// name the slug is derived from.
type TaxonomyInput struct {
	Name string `json:"name"`
}

// PatchTaxonomyInput carries partial updates. Nil means "leave unchanged".
type PatchTaxonomyInput struct {
	Name *string `json:"name"`
}

func validateTaxonomyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("Name is required")
	}
	if len(name) > 50 {
		return models.NewValidationError("Name too long (max 50 characters)")
	}
	return nil
}

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in TaxonomyInput) (*models.Category, error) {
	if err := validateTaxonomyName(in.Name); err != nil {
		return nil, err
	}
	catSlug, err := deriveSlug(in.Name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{Name: in.Name, Slug: catSlug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory renames the category; the slug follows the new name.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in TaxonomyInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTaxonomyName(in.Name); err != nil {
		return nil, err
	}
	newSlug, err := deriveSlug(in.Name)
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Slug = newSlug
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) PatchCategory(ctx context.Context, id uint, in PatchTaxonomyInput) (*models.Category, error) {
	if in.Name == nil {
		return s.categoryRepo.GetByID(ctx, id)
	}
	return s.UpdateCategory(ctx, id, TaxonomyInput{Name: *in.Name})
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) CreateTag(ctx context.Context, in TaxonomyInput) (*models.Tag, error) {
	if err := validateTaxonomyName(in.Name); err != nil {
		return nil, err
	}
	tagSlug, err := deriveSlug(in.Name)
	if err != nil {
		return nil, err
	}

	tag := &models.Tag{Name: in.Name, Slug: tagSlug}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetTag(ctx context.Context, slug string) (*models.Tag, error) {
	return s.tagRepo.GetBySlug(ctx, slug)
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, in TaxonomyInput) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTaxonomyName(in.Name); err != nil {
		return nil, err
	}
	newSlug, err := deriveSlug(in.Name)
	if err != nil {
		return nil, err
	}

	tag.Name = in.Name
	tag.Slug = newSlug
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) PatchTag(ctx context.Context, id uint, in PatchTaxonomyInput) (*models.Tag, error) {
	if in.Name == nil {
		return s.tagRepo.GetByID(ctx, id)
	}
	return s.UpdateTag(ctx, id, TaxonomyInput{Name: *in.Name})
}

func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	return s.tagRepo.Delete(ctx, id)
}
