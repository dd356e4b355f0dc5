// Package database owns the process-wide gorm handle. Connect is called
// once from main before any handler is registered; everything else reaches
// the handle through GetDB.
package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the SQLite database at dsn and stores the handle. The dsn
// is a file path (created if absent) or ":memory:"; it comes from
// TALLY_DB_PATH via config.Load.
func Connect(dsn string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	return nil
}

// GetDB returns the handle opened by Connect, or nil before it ran.
func GetDB() *gorm.DB {
	return DB
}
