package repository

import (
	"context"
	"testing"

	"chesnokuz/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateBumpsCounter(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "Author", "")
	post := seedPost(t, db, author.ID, "Discussed", "discussed")

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: post.ID, Text: "anonymous take", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: post.ID, UserID: &author.ID, Text: "signed take", IsActive: true}))

	var fresh models.Post
	require.NoError(t, db.First(&fresh, post.ID).Error)
	assert.EqualValues(t, 2, fresh.CommentsCount)
}

func TestCommentListByPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "Author", "")
	post := seedPost(t, db, author.ID, "Discussed", "discussed")
	other := seedPost(t, db, author.ID, "Quiet", "quiet")

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: post.ID, Text: "on topic", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: other.ID, Text: "elsewhere", IsActive: true}))

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on topic", comments[0].Text)
}

func TestCommentDeleteDecrementsCounter(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "Author", "")
	post := seedPost(t, db, author.ID, "Discussed", "discussed")

	comment := &models.Comment{PostID: post.ID, Text: "fleeting", IsActive: true}
	require.NoError(t, repo.Create(ctx, comment))
	require.NoError(t, repo.Delete(ctx, comment.ID))

	var fresh models.Post
	require.NoError(t, db.First(&fresh, post.ID).Error)
	assert.Zero(t, fresh.CommentsCount)
}
