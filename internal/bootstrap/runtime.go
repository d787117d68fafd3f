// Package bootstrap wires process-level dependencies together for the
// server and auxiliary commands.
package bootstrap

import (
	"fmt"

	"chesnokuz/internal/cache"
	"chesnokuz/internal/config"
	"chesnokuz/internal/database"
	"chesnokuz/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates the database with generated content after
	// connecting. Intended for development environments only.
	SeedDemoData bool
	SeedUsers    int
	SeedPosts    int
}

// InitRuntime connects to the database and Redis and optionally seeds
// demo content. The returned Redis client may be nil when the cache is
// unreachable; callers are expected to degrade to uncached reads.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData && !cfg.IsProduction() {
		users := opts.SeedUsers
		if users <= 0 {
			users = 20
		}
		posts := opts.SeedPosts
		if posts <= 0 {
			posts = 60
		}
		if err := seed.Seed(db, seed.Options{NumUsers: users, NumPosts: posts}); err != nil {
			return nil, nil, fmt.Errorf("demo seeding failed: %w", err)
		}
	}

	return db, r, nil
}
