package service

import (
	"context"
	"strings"
	"testing"

	"chesnokuz/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("derives slug from name", func(t *testing.T) {
		t.Parallel()
		svc := NewCategoryService(noopCategoryRepo())
		category, err := svc.CreateCategory(ctx, TaxonomyInput{Name: "Local News"})
		require.NoError(t, err)
		assert.Equal(t, "local-news", category.Slug)
	})

	t.Run("cyrillic names slugify", func(t *testing.T) {
		t.Parallel()
		svc := NewCategoryService(noopCategoryRepo())
		category, err := svc.CreateCategory(ctx, TaxonomyInput{Name: "Янгиликлар"})
		require.NoError(t, err)
		assert.Equal(t, "янгиликлар", category.Slug)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		svc := NewCategoryService(noopCategoryRepo())
		_, err := svc.CreateCategory(ctx, TaxonomyInput{Name: "  "})
		assertValidationError(t, err)
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()
		svc := NewCategoryService(noopCategoryRepo())
		_, err := svc.CreateCategory(ctx, TaxonomyInput{Name: strings.Repeat("a", 51)})
		assertValidationError(t, err)
	})

	t.Run("reserved name", func(t *testing.T) {
		t.Parallel()
		svc := NewCategoryService(noopCategoryRepo())
		_, err := svc.CreateCategory(ctx, TaxonomyInput{Name: "List"})
		assertValidationError(t, err)
	})
}

func TestCategoryService_UpdateCategory_RenamesSlug(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := &models.Category{ID: 2, Name: "Old", Slug: "old"}
	catRepo := noopCategoryRepo()
	catRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Category, error) { return existing, nil }
	svc := NewCategoryService(catRepo)

	updated, err := svc.UpdateCategory(ctx, 2, TaxonomyInput{Name: "World Politics"})
	require.NoError(t, err)
	assert.Equal(t, "world-politics", updated.Slug)
}

func TestCategoryService_PatchCategory_NilNameIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := &models.Category{ID: 2, Name: "Sport", Slug: "sport"}
	catRepo := noopCategoryRepo()
	catRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Category, error) { return existing, nil }
	updateCalled := false
	catRepo.updateFn = func(_ context.Context, _ *models.Category) error {
		updateCalled = true
		return nil
	}
	svc := NewCategoryService(catRepo)

	patched, err := svc.PatchCategory(ctx, 2, PatchTaxonomyInput{})
	require.NoError(t, err)
	assert.Equal(t, "sport", patched.Slug)
	assert.False(t, updateCalled, "nothing to change, nothing to write")
}

func TestTagService_CreateTag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tagRepo := &tagRepoStub{
		createFn: func(_ context.Context, tag *models.Tag) error {
			tag.ID = 1
			return nil
		},
	}
	svc := NewTagService(tagRepo)

	tag, err := svc.CreateTag(ctx, TaxonomyInput{Name: "Ipak Yo'li"})
	require.NoError(t, err)
	assert.Equal(t, "ipak-yo-li", tag.Slug)
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	createFn    func(context.Context, *models.Tag) error
	getByIDFn   func(context.Context, uint) (*models.Tag, error)
	getBySlugFn func(context.Context, string) (*models.Tag, error)
	listFn      func(context.Context) ([]models.Tag, error)
	updateFn    func(context.Context, *models.Tag) error
	deleteFn    func(context.Context, uint) error
}

func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}
func (s *tagRepoStub) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tagRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *tagRepoStub) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}
func (s *tagRepoStub) Update(ctx context.Context, tag *models.Tag) error {
	return s.updateFn(ctx, tag)
}
func (s *tagRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
