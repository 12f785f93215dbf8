package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key-value pair. The layout mirrors the browser
// storage the storefront originally used: everything is a string under a
// well-known key ("cart:<guest>", "theme:<guest>", ...).
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

// KV is a durable string key-value store backed by gorm. Writes are
// synchronous; once Put returns, the value is in the database.
type KV struct {
	db *gorm.DB
}

func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// Migrate creates the backing table.
func (s *KV) Migrate() error {
	return s.db.AutoMigrate(&Entry{})
}

// Get returns the stored value and whether the key exists. A missing key is
// not an error.
func (s *KV) Get(key string) (string, bool, error) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

// Put stores the value, overwriting any previous one.
func (s *KV) Put(key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&e).Error
}

// Delete removes the key. Deleting a missing key is a no-op.
func (s *KV) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
