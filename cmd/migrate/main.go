package main

import (
	"context" // Context for seeding

	"movie_reviews/internal/config"     // Custom import path (Config)
	"movie_reviews/internal/db"         // Custom import path (Database)
	"movie_reviews/internal/repository" // Custom import path (Repositories)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	store, err := db.Connect(cfg) // Open the configured database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	defer func() { _ = db.Close(store) }()

	if err := db.Migrate(store); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the role labels registration resolves against
	ctx := context.Background()
	roles := repository.NewRoleRepo(store)
	if err := roles.Ensure(ctx, cfg.SeedRoles...); err != nil {
		logrus.Fatalf("seeding roles failed: %v", err)
	}
	// Report every stored role, including ones seeded by earlier runs
	stored, err := roles.List(ctx)
	if err != nil {
		logrus.Fatalf("listing roles failed: %v", err)
	}
	names := make([]string, len(stored))
	for i, r := range stored {
		names[i] = r.Name
	}
	logrus.WithField("roles", names).Info("Roles seeded.")
}
