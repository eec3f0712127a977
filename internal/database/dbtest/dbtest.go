// Package dbtest opens isolated in-memory SQLite databases for package tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"barbershop/internal/database"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// Open returns a fresh database named after the running test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", nameReplacer.Replace(t.Name()))
	db, err := database.Connect(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A shared-cache memory database lives as long as one connection is open.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
