// Package service holds the application's business rules between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"strings"

	"chesnokuz/internal/cache"
	"chesnokuz/internal/middleware"
	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"
	"chesnokuz/internal/slug"
	"chesnokuz/internal/validation"
)

// wordsPerMinute drives the mins_read estimate.
const wordsPerMinute = 200

type PostService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	UserID     uint   `json:"user_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CategoryID *uint  `json:"category_id"`
	IsActive   *bool  `json:"is_active"`
}

// UpdatePostInput is the full-replace payload. Every field is authoritative;
// omitted fields take their zero values.
type UpdatePostInput struct {
	UserID     uint   `json:"user_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CategoryID *uint  `json:"category_id"`
	IsActive   bool   `json:"is_active"`
}

// PatchPostInput carries partial updates. Nil means "leave unchanged".
type PatchPostInput struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	CategoryID *uint   `json:"category_id"`
	IsActive   *bool   `json:"is_active"`
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// minsRead estimates reading time from the body's word count. Never below one
// minute for a non-empty body.
func minsRead(body string) int64 {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	mins := int64(words / wordsPerMinute)
	if mins < 1 {
		mins = 1
	}
	return mins
}

// deriveSlug builds and validates the slug for a title.
func deriveSlug(title string) (string, error) {
	s := slug.Make(title)
	if err := validation.ValidateSlug(s); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	return s, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > 255 {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	postSlug, err := deriveSlug(in.Title)
	if err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	post := &models.Post{
		UserID:     in.UserID,
		Title:      in.Title,
		Slug:       postSlug,
		Body:       in.Body,
		CategoryID: in.CategoryID,
		MinsRead:   minsRead(in.Body),
		IsActive:   isActive,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.postRepo.List(ctx, filter)
}

func (s *PostService) ListByAuthor(ctx context.Context, userID uint) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthor(ctx, userID)
}

// ViewPost resolves a post by slug and counts the read.
func (s *PostService) ViewPost(ctx context.Context, postSlug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.IncrementViews(ctx, post); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to count post view",
			"slug", post.Slug, "error", err)
	} else {
		middleware.PostViews.Inc()
	}
	return post, nil
}

// UpdatePost replaces the post wholesale. The slug is re-derived from the
// incoming title, so renames move the post to a new address.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	newSlug, err := deriveSlug(in.Title)
	if err != nil {
		return nil, err
	}

	oldSlug := post.Slug
	post.UserID = in.UserID
	post.Title = in.Title
	post.Slug = newSlug
	post.Body = in.Body
	post.CategoryID = in.CategoryID
	post.MinsRead = minsRead(in.Body)
	post.IsActive = in.IsActive

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateRenamed(ctx, oldSlug, post.Slug)
	return post, nil
}

// PatchPost applies only the fields present in the payload.
func (s *PostService) PatchPost(ctx context.Context, id uint, in PatchPostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldSlug := post.Slug
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		newSlug, err := deriveSlug(*in.Title)
		if err != nil {
			return nil, err
		}
		post.Title = *in.Title
		post.Slug = newSlug
	}
	if in.Body != nil {
		post.Body = *in.Body
		post.MinsRead = minsRead(*in.Body)
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = in.CategoryID
	}
	if in.IsActive != nil {
		post.IsActive = *in.IsActive
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateRenamed(ctx, oldSlug, post.Slug)
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}

func (s *PostService) AttachTag(ctx context.Context, postID, tagID uint) error {
	return s.postRepo.AttachTag(ctx, postID, tagID)
}

func (s *PostService) DetachTag(ctx context.Context, postID, tagID uint) error {
	return s.postRepo.DetachTag(ctx, postID, tagID)
}

func (s *PostService) AttachMedia(ctx context.Context, postID, mediaID uint) error {
	return s.postRepo.AttachMedia(ctx, postID, mediaID)
}

func (s *PostService) DetachMedia(ctx context.Context, postID, mediaID uint) error {
	return s.postRepo.DetachMedia(ctx, postID, mediaID)
}

// invalidateRenamed drops the stale cache entry after a slug change. The
// repository already invalidates the current slug on update.
func (s *PostService) invalidateRenamed(ctx context.Context, oldSlug, newSlug string) {
	if oldSlug != newSlug {
		cache.InvalidatePost(ctx, oldSlug)
	}
}
