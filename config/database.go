package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the embedded store. The shop's data lives in a single
// local database file; there is no database server to reach.
func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "laundrypos.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("Failed to open local database")
	}

	DB = db
}
