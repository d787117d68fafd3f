package repository

import (
	"context"
	"errors"
	"testing"

	"chesnokuz/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	email := "aziz@chesnok.uz"
	user := &models.User{Email: &email, Password: "hash", FirstName: "Aziz", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aziz", got.FirstName)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	email := "dup@chesnok.uz"
	require.NoError(t, repo.Create(ctx, &models.User{Email: &email, Password: "x"}))

	err := repo.Create(ctx, &models.User{Email: &email, Password: "x"})
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserGetByNameFuzzy(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := seedUser(t, db, "Dilnoza", "")
	seedUser(t, db, "Dilshod", "")

	got, err := repo.GetByName(ctx, "DIL")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "substring matches break ties by lowest id")

	got, err = repo.GetByName(ctx, "shod")
	require.NoError(t, err)
	assert.Equal(t, "Dilshod", got.FirstName)

	_, err = repo.GetByName(ctx, "nobody")
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserListActiveFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Active", "")
	inactive := seedUser(t, db, "Dormant", "")
	require.NoError(t, db.Model(inactive).UpdateColumn("is_active", false).Error)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active := true
	onlyActive, err := repo.List(ctx, &active)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, "Active", onlyActive[0].FirstName)
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "Author", "")
	reader := seedUser(t, db, "Reader", "")
	post := seedPost(t, db, author.ID, "Hello", "hello")

	require.NoError(t, db.Create(&models.Comment{UserID: &reader.ID, PostID: post.ID, Text: "nice", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Device{UserAgent: "ua-1"}).Error)
	require.NoError(t, db.Create(&models.Like{DeviceID: 1, PostID: post.ID}).Error)

	require.NoError(t, repo.Delete(ctx, author.ID))

	var posts, comments, likes int64
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Like{}).Count(&likes)
	assert.Zero(t, posts)
	assert.Zero(t, comments, "comments on the author's posts go with the posts")
	assert.Zero(t, likes)

	_, err := repo.GetByID(ctx, reader.ID)
	assert.NoError(t, err, "other users are untouched")

	err = repo.Delete(ctx, 9999)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
