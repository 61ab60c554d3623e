package services

import (
	"strings"

	"crop-procurement-api/models"
)

type statusMessage struct {
	Title    string
	Body     string
	Type     string
	Priority string
}

var statusMessages = map[models.SubmissionStatus]statusMessage{
	models.StatusApproved: {
		Title:    "Crop Submission Approved",
		Body:     "Your crop submission has been approved",
		Type:     models.NotificationTypeInfo,
		Priority: models.NotificationPriorityMedium,
	},
	models.StatusScheduled: {
		Title:    "Pickup Scheduled",
		Body:     "Your crop pickup has been scheduled",
		Type:     models.NotificationTypeInfo,
		Priority: models.NotificationPriorityMedium,
	},
	models.StatusCollected: {
		Title:    "Crop Collected",
		Body:     "Your crop has been collected successfully",
		Type:     models.NotificationTypeInfo,
		Priority: models.NotificationPriorityMedium,
	},
	models.StatusRejected: {
		Title:    "Crop Submission Rejected",
		Body:     "Your crop submission has been rejected",
		Type:     models.NotificationTypeWarning,
		Priority: models.NotificationPriorityHigh,
	},
}

// statusNotification builds the farmer-facing notification for a status the
// farmer is told about. ok is false for any other status.
func statusNotification(sub *models.CropSubmission, senderID string) (n *models.Notification, ok bool) {
	msg, ok := statusMessages[sub.Status]
	if !ok {
		return nil, false
	}

	body := msg.Body
	if sub.Status == models.StatusRejected && sub.RejectionReason != nil {
		if reason := strings.TrimSpace(*sub.RejectionReason); reason != "" {
			body += ": " + reason
		}
	}

	n = &models.Notification{
		RecipientID: sub.FarmerID,
		Title:       msg.Title,
		Message:     body,
		Type:        msg.Type,
		Category:    models.NotificationCategoryCropSubmission,
		Priority:    msg.Priority,
		RelatedTo: models.RelatedEntity{
			EntityType: models.EntityTypeCropSubmission,
			EntityID:   sub.ID,
		},
	}
	if senderID != "" {
		sender := senderID
		n.SenderID = &sender
	}
	return n, true
}
