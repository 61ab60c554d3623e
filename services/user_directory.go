package services

import (
	"context"

	"crop-procurement-api/models"

	"gorm.io/gorm"
)

// UserDirectory resolves user ids to identity summaries.
type UserDirectory interface {
	FindSummary(ctx context.Context, id string) (*models.UserSummary, error)
}

type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) FindSummary(ctx context.Context, id string) (*models.UserSummary, error) {
	var u models.UserSummary
	err := d.db.WithContext(ctx).
		Select("id", "name", "email", "phone").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&u).Error
	if err != nil {
		return nil, translateNotFound(err, "user")
	}
	return &u, nil
}
