package db

import (
	"campuscard/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/gorm" // GORM ORM library
)

// models lists every table in foreign-key dependency order.
// Independent tables come first so constraints resolve during migration.
func models() []any {
	return []any{
		&domain.School{},
		&domain.Wallet{},
		&domain.SecurityQuestion{},
		&domain.Event{},
		&domain.User{},
		&domain.UserProfile{},
		&domain.Transaction{},
		&domain.UserSecurityAnswer{},
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := Open(dsn) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(models()...); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

// Reset drops every table and recreates the schema from scratch.
// Destructive and irreversible; there is no partial-reset mode.
func Reset(dsn string) {
	db, err := Open(dsn)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// Drop dependents first so foreign-key constraints don't block the drop
	ms := models()
	for i := len(ms) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(ms[i]); err != nil {
			logrus.Fatalf("drop failed: %v", err)
		}
	}
	if err := db.AutoMigrate(ms...); err != nil {
		logrus.Fatalf("recreate failed: %v", err)
	}
	logrus.Info("Schema reset completed.")
}

// ResetWith runs the same drop-and-recreate cycle against an already open
// connection. cmd/reset and tests share it.
func ResetWith(db *gorm.DB) error {
	ms := models()
	for i := len(ms) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(ms[i]); err != nil {
			return err
		}
	}
	return db.AutoMigrate(ms...)
}
