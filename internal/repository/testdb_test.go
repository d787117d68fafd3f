package repository

import (
	"testing"

	"chesnokuz/internal/database"
	"chesnokuz/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, firstName string, email string) *models.User {
	t.Helper()
	user := &models.User{FirstName: firstName, Password: "x", IsActive: true}
	if email != "" {
		user.Email = &email
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, title, slug string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Title: title, Slug: slug, Body: "body", IsActive: true}
	require.NoError(t, db.Create(post).Error)
	return post
}
