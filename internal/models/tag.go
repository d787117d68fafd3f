package models

// Tag is a free-form label attached to posts through the post_tags join table.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Slug string `gorm:"size:100;not null;uniqueIndex" json:"slug"`

	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}

// PostTag is the explicit join row between a post and a tag. It matches the
// table GORM manages for the many2many association, so it can be queried and
// deleted directly during cascades and tag filtering.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}

// TableName specifies the table name for GORM.
func (PostTag) TableName() string {
	return "post_tags"
}
