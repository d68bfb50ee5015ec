package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arnold/weeklygoals-api/internal/models"
)

// GormStore keeps each key as a row of the documents table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).Where(&models.Document{Key: key}).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, readError(key, err)
	}
	return doc.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	doc := models.Document{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return writeError("set", key, err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where(&models.Document{Key: key}).Delete(&models.Document{}).Error; err != nil {
		return writeError("remove", key, err)
	}
	return nil
}
