package models

import "time"

// CropSubmissionStatusHistory tracks historical status changes for crop submissions.
type CropSubmissionStatusHistory struct {
	HistoryID    uint              `gorm:"primaryKey;column:history_id" json:"historyId"`
	SubmissionID string            `gorm:"column:submission_id;type:varchar(36);index" json:"submissionId"`
	OldStatus    *SubmissionStatus `gorm:"column:old_status;type:varchar(20)" json:"oldStatus"`
	NewStatus    SubmissionStatus  `gorm:"column:new_status;type:varchar(20)" json:"newStatus"`
	ChangedBy    string            `gorm:"column:changed_by;type:varchar(36)" json:"changedBy"`
	Reason       *string           `gorm:"column:reason" json:"reason"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"createdAt"`
}

// TableName specifies the table for CropSubmissionStatusHistory.
func (CropSubmissionStatusHistory) TableName() string {
	return "crop_submission_status_history"
}
