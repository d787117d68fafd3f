package repository

import (
	"context"
	"errors"
	"strings"

	"chesnokuz/internal/cache"
	"chesnokuz/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilter narrows List results. Nil fields are ignored.
type PostFilter struct {
	IsActive   *bool
	CategoryID *uint
	TagID      *uint
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]models.Post, error)
	ListByAuthor(ctx context.Context, userID uint) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, post *models.Post) error
	AttachTag(ctx context.Context, postID, tagID uint) error
	DetachTag(ctx context.Context, postID, tagID uint) error
	AttachMedia(ctx context.Context, postID, mediaID uint) error
	DetachMedia(ctx context.Context, postID, mediaID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and bumps the author's posts_count in one transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Media").Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", post.UserID).
			UpdateColumn("posts_count", gorm.Expr("posts_count + 1")).Error
	})
	return translate(err, "Post")
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Category").Preload("Tags").Preload("Media").
		First(&post, id).Error
	if err != nil {
		return nil, translate(err, "Post")
	}
	return &post, nil
}

// GetBySlug resolves a post by slug: exact match first, then a
// case-insensitive substring fallback with lowest-id tie-break. Exact hits
// are served through the cache; fuzzy hits always go to the store so the
// cache only ever holds entries under their canonical slug.
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post

	loadExact := func() error {
		return r.db.WithContext(ctx).
			Preload("User").Preload("Category").Preload("Tags").Preload("Media").
			Where("slug = ?", slug).
			First(&post).Error
	}

	err := cache.Aside(ctx, cache.PostKey(slug), &post, cache.PostTTL, loadExact)
	if err == nil {
		return &post, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err, "Post")
	}

	pattern := "%" + strings.ToLower(slug) + "%"
	err = r.db.WithContext(ctx).
		Preload("User").Preload("Category").Preload("Tags").Preload("Media").
		Where("LOWER(slug) LIKE ?", pattern).
		Order("id ASC").
		First(&post).Error
	if err != nil {
		return nil, translate(err, "Post")
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	posts := []models.Post{}
	q := r.db.WithContext(ctx).Model(&models.Post{}).
		Preload("User").Preload("Category").Preload("Tags")
	if filter.IsActive != nil {
		q = q.Where("posts.is_active = ?", *filter.IsActive)
	}
	if filter.CategoryID != nil {
		q = q.Where("posts.category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		q = q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", *filter.TagID)
	}
	if err := q.Order("posts.created_at DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, userID uint) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("Tags", "Media").Save(post).Error; err != nil {
		return translate(err, "Post")
	}
	cache.InvalidatePost(ctx, post.Slug)
	return nil
}

// Delete removes the post with its comments, likes and join rows, and
// decrements the author's posts_count.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		slug = post.Slug

		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", post.UserID).
			UpdateColumn("posts_count", gorm.Expr("posts_count - 1")).Error
	})
	if err != nil {
		return translate(err, "Post")
	}
	cache.InvalidatePost(ctx, slug)
	return nil
}

// IncrementViews bumps the post's views_count and the author's
// posts_read_count. The counters move together or not at all.
func (r *postRepository) IncrementViews(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", post.UserID).
			UpdateColumn("posts_read_count", gorm.Expr("posts_read_count + 1")).Error
	})
	if err != nil {
		return translate(err, "Post")
	}
	post.ViewsCount++
	cache.InvalidatePost(ctx, post.Slug)
	return nil
}

// AttachTag links a tag to a post. Re-attaching an existing pair is a no-op.
func (r *postRepository) AttachTag(ctx context.Context, postID, tagID uint) error {
	if err := r.requireExists(ctx, &models.Post{}, postID, "Post"); err != nil {
		return err
	}
	if err := r.requireExists(ctx, &models.Tag{}, tagID, "Tag"); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostTag{PostID: postID, TagID: tagID}).Error
	return translate(err, "Post tag")
}

func (r *postRepository) DetachTag(ctx context.Context, postID, tagID uint) error {
	if err := r.requireExists(ctx, &models.Post{}, postID, "Post"); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND tag_id = ?", postID, tagID).
		Delete(&models.PostTag{}).Error
	return translate(err, "Post tag")
}

// AttachMedia links a media item to a post. Duplicate pairs are ignored.
func (r *postRepository) AttachMedia(ctx context.Context, postID, mediaID uint) error {
	if err := r.requireExists(ctx, &models.Post{}, postID, "Post"); err != nil {
		return err
	}
	if err := r.requireExists(ctx, &models.Media{}, mediaID, "Media"); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostMedia{PostID: postID, MediaID: mediaID}).Error
	return translate(err, "Post media")
}

func (r *postRepository) DetachMedia(ctx context.Context, postID, mediaID uint) error {
	if err := r.requireExists(ctx, &models.Post{}, postID, "Post"); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND media_id = ?", postID, mediaID).
		Delete(&models.PostMedia{}).Error
	return translate(err, "Post media")
}

func (r *postRepository) requireExists(ctx context.Context, model interface{}, id uint, resource string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError(resource)
	}
	return nil
}
