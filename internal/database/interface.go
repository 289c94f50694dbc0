package database

import (
	"gorm.io/gorm"

	"github.com/clipstack/clipstack-backend/internal/logger"
)

// Service defines the interface for database operations
type Service interface {
	Connect() (*gorm.DB, error)
	Close() error
}

// Logger interface for logging operations
type Logger = logger.Logger
