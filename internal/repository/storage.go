package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikolayk812/storefront/internal/port"
	gormlogger "gorm.io/gorm/logger"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Storage is a LocalStorage backend that may hold an open handle.
type Storage interface {
	port.LocalStorage
	Close() error
}

// OpenStorage selects a LocalStorage backend by driver name.
func OpenStorage(driver, path string, gormLog gormlogger.Interface) (Storage, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStorage(), nil
	case DriverFile:
		s, err := NewFileStorage(path)
		if err != nil {
			return nil, fmt.Errorf("NewFileStorage: %w", err)
		}
		return s, nil
	case DriverSQLite:
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return nil, fmt.Errorf("os.MkdirAll: %w", err)
			}
		}
		s, err := NewSQLiteStorage(path, gormLog)
		if err != nil {
			return nil, fmt.Errorf("NewSQLiteStorage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage driver[%s] is not supported", driver)
	}
}
