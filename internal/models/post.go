package models

import "time"

// Post is a published news article.
//
// Slug is derived from Title on create and on every rename; uniqueness is
// enforced by the store and surfaces as a Conflict error, never a crash.
// ViewsCount, LikesCount and CommentsCount are denormalized counters
// maintained by the service/repository layer with SQL expressions.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Slug          string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Body          string    `gorm:"type:text" json:"body"`
	CategoryID    *uint     `json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ViewsCount    int64     `gorm:"not null;default:0" json:"views_count"`
	LikesCount    int64     `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int64     `gorm:"not null;default:0" json:"comments_count"`
	MinsRead      int64     `gorm:"not null;default:0" json:"mins_read"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Tags     []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
	Media    []Media   `gorm:"many2many:post_media" json:"media,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}
