// Command migrate applies the database schema explicitly. The server
// applies it automatically outside production, so this exists for
// production rollouts and CI.
package main

import (
	"flag"
	"log"

	"chesnokuz/internal/config"
	"chesnokuz/internal/database"
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.ApplySchema(db); err != nil {
		log.Fatalf("Schema migration failed: %v", err)
	}

	log.Printf("Schema applied to %s", cfg.DBName)
}
