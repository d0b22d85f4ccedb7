package config

import (
	"log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func newMigrator() *migrate.Migrate {
	db, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get database connection:", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Failed to create postgres driver:", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+filepath.Join("migrations"),
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal("Failed to create migrate instance:", err)
	}
	return m
}

// ExecuteMigrations runs all pending database migrations
func ExecuteMigrations() {
	m := newMigrator()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Database migrations completed successfully")
}

// RollbackMigration rolls back the last migration
func RollbackMigration() {
	m := newMigrator()
	if err := m.Steps(-1); err != nil {
		log.Fatal("Failed to rollback migration:", err)
	}
	log.Println("Migration rolled back successfully")
}

// MigrateSteps applies n migrations forward, or rolls back -n when negative
func MigrateSteps(n int) {
	m := newMigrator()
	if err := m.Steps(n); err != nil && err != migrate.ErrNoChange {
		log.Fatal("Failed to step migrations:", err)
	}
	log.Printf("Stepped migrations by %d", n)
}

// RollbackAllMigrations downgrades the schema back to base, removing all
// trigger DDL that the migration chain created.
func RollbackAllMigrations() {
	m := newMigrator()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("Failed to rollback migrations:", err)
	}
	log.Println("All migrations rolled back successfully")
}
