// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an author or reader account.
//
// Email is optional but unique when present, which is why it is a pointer:
// multiple rows with a NULL email must not collide on the unique index.
// Password always holds a bcrypt hash and is never serialized.
type User struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Email          *string     `gorm:"size:50;uniqueIndex" json:"email"`
	Password       string      `gorm:"size:100;not null" json:"-"`
	FirstName      string      `gorm:"size:50" json:"first_name"`
	LastName       string      `gorm:"size:50" json:"last_name"`
	ProfessionID   *uint       `json:"profession_id"`
	Profession     *Profession `gorm:"foreignKey:ProfessionID" json:"profession,omitempty"`
	Bio            string      `gorm:"type:text" json:"bio"`
	PostsCount     int64       `gorm:"not null;default:0" json:"posts_count"`
	PostsReadCount int64       `gorm:"not null;default:0" json:"posts_read_count"`
	IsActive       bool        `gorm:"not null;default:true" json:"is_active"`
	IsStaff        bool        `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser    bool        `gorm:"not null;default:false" json:"is_superuser"`
	IsDeleted      bool        `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Posts    []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
