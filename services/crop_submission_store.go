package services

import (
	"context"
	"errors"
	"fmt"

	"crop-procurement-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmissionFilter narrows a submission listing. Empty fields do not filter.
type SubmissionFilter struct {
	FarmerID  string
	OfficerID string
	Status    models.SubmissionStatus
	Limit     int
	Offset    int
}

// SubmissionStore persists crop submissions keyed by id.
type SubmissionStore interface {
	Create(ctx context.Context, sub *models.CropSubmission) error
	FindByID(ctx context.Context, id string) (*models.CropSubmission, error)
	// FindByIDWithUsers also resolves farmer and officer identity summaries.
	FindByIDWithUsers(ctx context.Context, id string) (*models.CropSubmission, error)
	// Save writes the full submission; a non-nil history row is written in
	// the same transaction.
	Save(ctx context.Context, sub *models.CropSubmission, history *models.CropSubmissionStatusHistory) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter SubmissionFilter) ([]models.CropSubmission, int64, error)
}

type GormSubmissionStore struct {
	db *gorm.DB
}

func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{db: db}
}

func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "phone")
}

func (s *GormSubmissionStore) Create(ctx context.Context, sub *models.CropSubmission) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(sub).Error; err != nil {
		return fmt.Errorf("create crop submission: %w", err)
	}
	return nil
}

func (s *GormSubmissionStore) FindByID(ctx context.Context, id string) (*models.CropSubmission, error) {
	var sub models.CropSubmission
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, translateNotFound(err, "crop submission")
	}
	return &sub, nil
}

func (s *GormSubmissionStore) FindByIDWithUsers(ctx context.Context, id string) (*models.CropSubmission, error) {
	var sub models.CropSubmission
	err := s.db.WithContext(ctx).
		Preload("Farmer", selectUserSummary).
		Preload("Officer", selectUserSummary).
		Where("id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, translateNotFound(err, "crop submission")
	}
	return &sub, nil
}

func (s *GormSubmissionStore) Save(ctx context.Context, sub *models.CropSubmission, history *models.CropSubmissionStatusHistory) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(sub).Error; err != nil {
			return fmt.Errorf("save crop submission %s: %w", sub.ID, err)
		}
		if history == nil {
			return nil
		}
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("record status history for %s: %w", sub.ID, err)
		}
		return nil
	})
}

func (s *GormSubmissionStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CropSubmission{})
	if res.Error != nil {
		return fmt.Errorf("delete crop submission %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(KindNotFound, "crop submission not found")
	}
	return nil
}

func (s *GormSubmissionStore) List(ctx context.Context, filter SubmissionFilter) ([]models.CropSubmission, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.CropSubmission{})
	if filter.FarmerID != "" {
		q = q.Where("farmer_id = ?", filter.FarmerID)
	}
	if filter.OfficerID != "" {
		q = q.Where("officer_id = ?", filter.OfficerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count crop submissions: %w", err)
	}

	var items []models.CropSubmission
	if err := q.Order("created_at DESC, id DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("list crop submissions: %w", err)
	}
	return items, total, nil
}

func translateNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(KindNotFound, what+" not found")
	}
	return fmt.Errorf("load %s: %w", what, err)
}
