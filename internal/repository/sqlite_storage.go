package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type localStorageModel struct {
	Key       string `gorm:"column:storage_key;primaryKey"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (localStorageModel) TableName() string {
	return "local_storage"
}

// SQLiteStorage keeps the key/value pairs in a local sqlite database file.
type SQLiteStorage struct {
	db *gorm.DB
}

// NewSQLiteStorage opens (creating if needed) the database at dsn, e.g. a file path or ":memory:".
func NewSQLiteStorage(dsn string, log gormlogger.Interface) (*SQLiteStorage, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is empty")
	}
	if log == nil {
		log = gormlogger.Discard
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB: %w", err)
	}
	// every ":memory:" connection is its own database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&localStorageModel{}); err != nil {
		return nil, fmt.Errorf("db.AutoMigrate: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) GetItem(key string) (string, bool, error) {
	var m localStorageModel

	err := s.db.Where("storage_key = ?", key).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.Take: %w", err)
	}

	return m.Value, true, nil
}

func (s *SQLiteStorage) SetItem(key, value string) error {
	m := localStorageModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("db.Create: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) RemoveItem(key string) error {
	if err := s.db.Where("storage_key = ?", key).Delete(&localStorageModel{}).Error; err != nil {
		return fmt.Errorf("db.Delete: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("db.DB: %w", err)
	}

	return sqlDB.Close()
}
