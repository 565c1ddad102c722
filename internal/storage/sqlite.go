package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Item - запись локального хранилища
type Item struct {
	Key       string `gorm:"column:name;primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (Item) TableName() string {
	return "local_storage"
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase - открывает (создаёт) файл хранилища и применяет миграцию
func NewDatabase(path string) (*Database, error) {
	if !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if err := db.AutoMigrate(&Item{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}
	return &Database{DB: db}, nil
}

func (s *Database) GetItem(ctx context.Context, key string) (string, error) {
	var item Item
	err := s.DB.WithContext(ctx).Where("name = ?", key).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("item %s %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get item: %w", err)
	}
	return item.Value, nil
}

func (s *Database) SetItem(ctx context.Context, key string, value string) error {
	item := Item{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}
	return nil
}

func (s *Database) RemoveItem(ctx context.Context, key string) error {
	if err := s.DB.WithContext(ctx).Where("name = ?", key).Delete(&Item{}).Error; err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

func (s *Database) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
