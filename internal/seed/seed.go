// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"chesnokuz/internal/models"
	"chesnokuz/internal/slug"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	professions, err := createProfessions(db)
	if err != nil {
		return fmt.Errorf("failed to create professions: %w", err)
	}
	log.Printf("✓ %d professions available", len(professions))

	users, err := createUsers(db, opts.NumUsers, professions)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	categories, err := createCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	tags, err := createTags(db)
	if err != nil {
		return fmt.Errorf("failed to create tags: %w", err)
	}
	log.Printf("✓ %d categories and %d tags available", len(categories), len(tags))

	posts, err := createPosts(db, users, categories, tags, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE likes, devices, comments, post_tags, post_media, posts, media, tags, categories, user_searches, users, professions RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createProfessions(db *gorm.DB) ([]models.Profession, error) {
	professions := make([]models.Profession, 0, len(professionNames))
	for _, name := range professionNames {
		p := models.Profession{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&p).Error; err != nil {
			return nil, err
		}
		professions = append(professions, p)
	}
	return professions, nil
}

func createUsers(db *gorm.DB, count int, professions []models.Profession) ([]models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := NewUser(string(hashedPassword))
		if len(professions) > 0 && rand.Intn(3) > 0 {
			user.ProfessionID = &professions[rand.Intn(len(professions))].ID
		}
		if err := db.Create(user).Error; err != nil {
			// Random emails can collide; skip and move on.
			continue
		}
		users = append(users, *user)
	}
	if len(users) == 0 && count > 0 {
		return nil, fmt.Errorf("no users could be created")
	}
	return users, nil
}

func createCategories(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		c := models.Category{Name: name, Slug: slug.Make(name)}
		if err := db.Where("slug = ?", c.Slug).FirstOrCreate(&c).Error; err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func createTags(db *gorm.DB) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag := models.Tag{Name: name, Slug: slug.Make(name)}
		if err := db.Where("slug = ?", tag.Slug).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func createPosts(db *gorm.DB, users []models.User, categories []models.Category, tags []models.Tag, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		post := NewPost(author.ID)
		if len(categories) > 0 {
			post.CategoryID = &categories[rand.Intn(len(categories))].ID
		}
		if err := db.Create(post).Error; err != nil {
			continue
		}
		if err := db.Model(&models.User{}).Where("id = ?", author.ID).
			UpdateColumn("posts_count", gorm.Expr("posts_count + 1")).Error; err != nil {
			return nil, err
		}

		for _, tag := range pickTags(tags) {
			link := models.PostTag{PostID: post.ID, TagID: tag.ID}
			if err := db.Create(&link).Error; err != nil {
				return nil, err
			}
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func pickTags(tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	n := rand.Intn(3)
	picked := make([]models.Tag, 0, n)
	seen := map[uint]bool{}
	for len(picked) < n {
		tag := tags[rand.Intn(len(tags))]
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		picked = append(picked, tag)
	}
	return picked
}

func createComments(db *gorm.DB, users []models.User, posts []models.Post) error {
	for _, post := range posts {
		n := rand.Intn(4)
		for i := 0; i < n; i++ {
			var userID *uint
			// Roughly a quarter of seeded comments stay anonymous.
			if rand.Intn(4) > 0 {
				userID = &users[rand.Intn(len(users))].ID
			}
			if err := db.Create(NewComment(post.ID, userID)).Error; err != nil {
				return err
			}
		}
		if n > 0 {
			if err := db.Model(&models.Post{}).Where("id = ?", post.ID).
				UpdateColumn("comments_count", gorm.Expr("comments_count + ?", n)).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
