package seed

import (
	"fmt"
	"strings"
	"time"

	"chesnokuz/internal/models"
	"chesnokuz/internal/slug"

	"github.com/brianvoe/gofakeit/v6"
)

func init() {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
}

var categoryNames = []string{
	"Politics", "Economy", "Society", "Sport", "Culture",
	"Technology", "World", "Local News", "Opinion",
}

var tagNames = []string{
	"Tashkent", "Samarkand", "Elections", "Football", "Weather",
	"Education", "Health", "Transport", "Tourism", "Startups",
}

var professionNames = []string{
	"Journalist", "Editor", "Photographer", "Columnist", "Correspondent",
}

// NewUser builds a random user with a pre-hashed password.
func NewUser(hashedPassword string) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	email := strings.ToLower(fmt.Sprintf("%s.%s@%s", first, last, gofakeit.DomainName()))
	return &models.User{
		Email:     &email,
		Password:  hashedPassword,
		FirstName: first,
		LastName:  last,
		Bio:       gofakeit.Sentence(8),
		IsActive:  true,
	}
}

// NewPost builds a random post for the given author. The slug gets a random
// suffix so repeated seeding runs do not collide on generated titles.
func NewPost(userID uint) *models.Post {
	title := strings.TrimSuffix(gofakeit.Sentence(5), ".")
	body := gofakeit.Paragraph(3, 4, 12, " ")
	words := len(strings.Fields(body))
	mins := int64(words / 200)
	if mins < 1 {
		mins = 1
	}
	base := slug.Make(title)
	if len(base) > 90 {
		base = strings.TrimRight(base[:90], "-")
	}
	return &models.Post{
		UserID:   userID,
		Title:    title,
		Slug:     fmt.Sprintf("%s-%d", base, gofakeit.Number(1000, 9999)),
		Body:     body,
		MinsRead: mins,
		IsActive: true,
	}
}

// NewComment builds a random comment on a post, occasionally anonymous.
func NewComment(postID uint, userID *uint) *models.Comment {
	return &models.Comment{
		PostID:   postID,
		UserID:   userID,
		Text:     gofakeit.Sentence(10),
		IsActive: true,
	}
}
