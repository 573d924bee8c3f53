// Package repo implements the data access layer for domain entities, backed
// by GORM over an in-memory SQLite database. The store lives only for the
// process lifetime, matching the site's fixed seed data model: rows are
// written once at startup and read-only afterwards.
package repo

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
)

// OpenMemory opens a fresh in-memory SQLite database. Each call gets its own
// uniquely named shared-cache DSN so parallel tests never see each other's
// rows, while all connections from one pool share the same data.
func OpenMemory() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:creatorhub_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	db.Exec("PRAGMA foreign_keys=ON;")

	// The shared-cache DSN only keeps data alive while at least one
	// connection is open; pin a single connection for the process.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// AutoMigrate creates the streamer, content, and user tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Streamer{},
		&domain.Content{},
		&domain.User{},
	)
}
