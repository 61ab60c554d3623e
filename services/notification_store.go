package services

import (
	"context"
	"fmt"
	"time"

	"crop-procurement-api/models"

	"gorm.io/gorm"
)

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]models.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, id, recipientID string, at time.Time) error
}

type GormNotificationStore struct {
	db *gorm.DB
}

func NewGormNotificationStore(db *gorm.DB) *GormNotificationStore {
	return &GormNotificationStore{db: db}
}

func (s *GormNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *GormNotificationStore) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	q := s.db.WithContext(ctx).Model(&models.Notification{}).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var items []models.Notification
	if err := q.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

func (s *GormNotificationStore) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return total, nil
}

// MarkRead only touches notifications addressed to recipientID.
func (s *GormNotificationStore) MarkRead(ctx context.Context, id, recipientID string, at time.Time) error {
	res := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return fmt.Errorf("mark notification %s read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(KindNotFound, "notification not found")
	}
	return nil
}
