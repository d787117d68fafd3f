package models

// UserSearch is an analytics aggregate: how often a lookup term was searched.
// One row per distinct term, upserted on every fuzzy user lookup.
type UserSearch struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Term  string `gorm:"size:50;not null;uniqueIndex" json:"term"`
	Count int64  `gorm:"not null;default:0" json:"count"`
}

// TableName specifies the table name for GORM.
func (UserSearch) TableName() string {
	return "user_searches"
}
