package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"fintrack/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// initDB opens the database and runs migrations. A Postgres DSN in DB_DSN selects
// the production backend; without one the server falls back to a local sqlite file
// so it runs with zero configuration.
func initDB() {
	var err error
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect postgres database:", err)
		}
	} else {
		if err := os.MkdirAll("data", 0755); err != nil {
			log.Fatal("failed to create data directory:", err)
		}
		db, err = gorm.Open(sqlite.Open(filepath.Join("data", "app.db")), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to open sqlite database:", err)
		}
	}

	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block the other.
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Transaction{}); err != nil {
			log.Printf("migration warning (transactions): %v", err)
		}
	}
}
