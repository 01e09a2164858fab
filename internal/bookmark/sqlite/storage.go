// Package sqlite adapts a sqlite file to the bookmark storage port, the
// service's stand-in for the browser's local storage: one key, full
// rewrites, last writer wins.
package sqlite

import (
	"database/sql"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hrops/hr-dashboard/internal/bookmark"
)

type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

type Storage struct {
	db *gorm.DB
}

var _ bookmark.Storage = (*Storage)(nil)

// Open opens (creating if needed) the sqlite file and ensures the
// kv_entries table exists.
func Open(path string) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Get(key string) ([]byte, bool, error) {
	var entry kvEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *Storage) Set(key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value}
	return s.db.Save(&entry).Error
}

// DB exposes the underlying connection for the health check.
func (s *Storage) DB() (*sql.DB, error) {
	return s.db.DB()
}
