package models

// Media is an external asset referenced by URL. Attachment to posts goes
// through the post_media join table; the file itself is never stored here.
type Media struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	URL string `gorm:"size:100;not null" json:"url"`

	Posts []Post `gorm:"many2many:post_media" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM.
func (Media) TableName() string {
	return "media"
}

// PostMedia is the explicit join row between a post and a media asset.
type PostMedia struct {
	PostID  uint `gorm:"primaryKey" json:"post_id"`
	MediaID uint `gorm:"primaryKey" json:"media_id"`
}

// TableName specifies the table name for GORM.
func (PostMedia) TableName() string {
	return "post_media"
}
