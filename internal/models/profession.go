package models

// Profession is an occupational label users may reference.
type Profession struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`

	Users []User `gorm:"foreignKey:ProfessionID" json:"users,omitempty"`
}

// TableName specifies the table name for GORM.
func (Profession) TableName() string {
	return "professions"
}
