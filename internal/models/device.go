package models

import "time"

// Device identifies an anonymous client by its user-agent string. Likes are
// tracked per device rather than per user, so engagement works without
// accounts. UserAgent is unique to make find-or-create well defined.
type Device struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserAgent  string    `gorm:"size:255;not null;uniqueIndex" json:"user_agent"`
	LastActive time.Time `gorm:"not null" json:"last_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Likes []Like `gorm:"foreignKey:DeviceID" json:"likes,omitempty"`
}

// TableName specifies the table name for GORM.
func (Device) TableName() string {
	return "devices"
}

// Like records a device's like on a post.
// The combination of DeviceID and PostID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  uint      `gorm:"not null;uniqueIndex:idx_device_post" json:"device_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_device_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	Device *Device `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
	Post   *Post   `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// TableName specifies the table name for GORM.
func (Like) TableName() string {
	return "likes"
}
