package database

import "chesnokuz/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Join entities come before the models that reference them so AutoMigrate
// creates the explicit composite-key tables rather than implicit ones.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Profession{},
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Media{},
		&models.Post{},
		&models.PostTag{},
		&models.PostMedia{},
		&models.Comment{},
		&models.Device{},
		&models.Like{},
		&models.UserSearch{},
	}
}
