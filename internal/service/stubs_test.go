package service

import (
	"context"
	"errors"
	"testing"

	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn    func(context.Context, *models.User) error
	getByIDFn   func(context.Context, uint) (*models.User, error)
	getByNameFn func(context.Context, string) (*models.User, error)
	listFn      func(context.Context, *bool) ([]models.User, error)
	updateFn    func(context.Context, *models.User) error
	deleteFn    func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByName(ctx context.Context, name string) (*models.User, error) {
	return s.getByNameFn(ctx, name)
}
func (s *userRepoStub) List(ctx context.Context, isActive *bool) ([]models.User, error) {
	return s.listFn(ctx, isActive)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:    func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:   func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByNameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{ID: 1}, nil },
		listFn:      func(_ context.Context, _ *bool) ([]models.User, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	getBySlugFn      func(context.Context, string) (*models.Post, error)
	listFn           func(context.Context, repository.PostFilter) ([]models.Post, error)
	listByAuthorFn   func(context.Context, uint) ([]models.Post, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
	incrementViewsFn func(context.Context, *models.Post) error
	attachTagFn      func(context.Context, uint, uint) error
	detachTagFn      func(context.Context, uint, uint) error
	attachMediaFn    func(context.Context, uint, uint) error
	detachMediaFn    func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, userID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IncrementViews(ctx context.Context, post *models.Post) error {
	return s.incrementViewsFn(ctx, post)
}
func (s *postRepoStub) AttachTag(ctx context.Context, postID, tagID uint) error {
	return s.attachTagFn(ctx, postID, tagID)
}
func (s *postRepoStub) DetachTag(ctx context.Context, postID, tagID uint) error {
	return s.detachTagFn(ctx, postID, tagID)
}
func (s *postRepoStub) AttachMedia(ctx context.Context, postID, mediaID uint) error {
	return s.attachMediaFn(ctx, postID, mediaID)
}
func (s *postRepoStub) DetachMedia(ctx context.Context, postID, mediaID uint) error {
	return s.detachMediaFn(ctx, postID, mediaID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn:        func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getBySlugFn:      func(_ context.Context, s string) (*models.Post, error) { return &models.Post{ID: 1, Slug: s}, nil },
		listFn:           func(_ context.Context, _ repository.PostFilter) ([]models.Post, error) { return nil, nil },
		listByAuthorFn:   func(_ context.Context, _ uint) ([]models.Post, error) { return nil, nil },
		updateFn:         func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		incrementViewsFn: func(_ context.Context, _ *models.Post) error { return nil },
		attachTagFn:      func(_ context.Context, _, _ uint) error { return nil },
		detachTagFn:      func(_ context.Context, _, _ uint) error { return nil },
		attachMediaFn:    func(_ context.Context, _, _ uint) error { return nil },
		detachMediaFn:    func(_ context.Context, _, _ uint) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn    func(context.Context, *models.Category) error
	getByIDFn   func(context.Context, uint) (*models.Category, error)
	getBySlugFn func(context.Context, string) (*models.Category, error)
	listFn      func(context.Context) ([]models.Category, error)
	updateFn    func(context.Context, *models.Category) error
	deleteFn    func(context.Context, uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	return s.createFn(ctx, c)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) Update(ctx context.Context, c *models.Category) error {
	return s.updateFn(ctx, c)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn: func(_ context.Context, c *models.Category) error {
			c.ID = 1
			return nil
		},
		getByIDFn:   func(_ context.Context, id uint) (*models.Category, error) { return &models.Category{ID: id}, nil },
		getBySlugFn: func(_ context.Context, s string) (*models.Category, error) { return &models.Category{ID: 1, Slug: s}, nil },
		listFn:      func(_ context.Context) ([]models.Category, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// professionRepoStub is a stub for repository.ProfessionRepository.
type professionRepoStub struct {
	createFn  func(context.Context, *models.Profession) error
	getByIDFn func(context.Context, uint) (*models.Profession, error)
	listFn    func(context.Context) ([]models.Profession, error)
}

func (s *professionRepoStub) Create(ctx context.Context, p *models.Profession) error {
	return s.createFn(ctx, p)
}
func (s *professionRepoStub) GetByID(ctx context.Context, id uint) (*models.Profession, error) {
	return s.getByIDFn(ctx, id)
}
func (s *professionRepoStub) List(ctx context.Context) ([]models.Profession, error) {
	return s.listFn(ctx)
}

func noopProfessionRepo() *professionRepoStub {
	return &professionRepoStub{
		createFn:  func(_ context.Context, _ *models.Profession) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Profession, error) { return &models.Profession{ID: id}, nil },
		listFn:    func(_ context.Context) ([]models.Profession, error) { return nil, nil },
	}
}

// searchRepoStub is a stub for repository.SearchRepository.
type searchRepoStub struct {
	recordTermFn func(context.Context, string) error
	listFn       func(context.Context) ([]models.UserSearch, error)
}

func (s *searchRepoStub) RecordTerm(ctx context.Context, term string) error {
	return s.recordTermFn(ctx, term)
}
func (s *searchRepoStub) List(ctx context.Context) ([]models.UserSearch, error) {
	return s.listFn(ctx)
}

func noopSearchRepo() *searchRepoStub {
	return &searchRepoStub{
		recordTermFn: func(_ context.Context, _ string) error { return nil },
		listFn:       func(_ context.Context) ([]models.UserSearch, error) { return nil, nil },
	}
}

// engagementRepoStub is a stub for repository.EngagementRepository.
type engagementRepoStub struct {
	findOrCreateDeviceFn func(context.Context, string) (*models.Device, error)
	likeFn               func(context.Context, uint, uint) (bool, error)
	unlikeFn             func(context.Context, uint, uint) (bool, error)
}

func (s *engagementRepoStub) FindOrCreateDevice(ctx context.Context, ua string) (*models.Device, error) {
	return s.findOrCreateDeviceFn(ctx, ua)
}
func (s *engagementRepoStub) Like(ctx context.Context, deviceID, postID uint) (bool, error) {
	return s.likeFn(ctx, deviceID, postID)
}
func (s *engagementRepoStub) Unlike(ctx context.Context, deviceID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, deviceID, postID)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		findOrCreateDeviceFn: func(_ context.Context, ua string) (*models.Device, error) {
			return &models.Device{ID: 1, UserAgent: ua}, nil
		},
		likeFn:   func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
	}
}
