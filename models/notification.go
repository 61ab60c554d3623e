package models

import "time"

const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"

	NotificationCategoryCropSubmission = "crop_submission"

	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"

	EntityTypeCropSubmission = "CropSubmission"
)

// RelatedEntity links a notification back to the record that caused it.
type RelatedEntity struct {
	EntityType string `gorm:"column:entity_type" json:"entityType"`
	EntityID   string `gorm:"column:entity_id;type:varchar(36);index" json:"entityId"`
}

type Notification struct {
	ID          string        `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	RecipientID string        `gorm:"column:recipient_id;type:varchar(36);not null;index" json:"recipientId"`
	SenderID    *string       `gorm:"column:sender_id;type:varchar(36)" json:"senderId,omitempty"`
	Title       string        `gorm:"column:title" json:"title"`
	Message     string        `gorm:"column:message" json:"message"`
	Type        string        `gorm:"column:type" json:"type"` // info|warning
	Category    string        `gorm:"column:category" json:"category"`
	Priority    string        `gorm:"column:priority" json:"priority"`
	RelatedTo   RelatedEntity `gorm:"embedded;embeddedPrefix:related_" json:"relatedTo"`
	IsRead      bool          `gorm:"column:is_read;default:false" json:"isRead"`
	ReadAt      *time.Time    `gorm:"column:read_at" json:"readAt,omitempty"`
	CreatedAt   time.Time     `gorm:"column:created_at;index" json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }
