package services

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"crop-procurement-api/models"
	"crop-procurement-api/utils"

	"github.com/google/uuid"
)

// Mailer sends HTML mail. config.SMTPMailer is the production implementation.
type Mailer interface {
	Enabled() bool
	SendMail(to []string, subject, html string) error
}

// NotificationSink receives notifications raised by the submission workflow.
type NotificationSink interface {
	Notify(ctx context.Context, n *models.Notification) error
}

// NotificationService persists notifications and mirrors them to the
// recipient's inbox when SMTP is configured.
type NotificationService struct {
	store   NotificationStore
	users   UserDirectory
	mailer  Mailer
	baseURL string
	now     func() time.Time
}

func NewNotificationService(store NotificationStore, users UserDirectory, mailer Mailer, baseURL string) *NotificationService {
	return &NotificationService{
		store:   store,
		users:   users,
		mailer:  mailer,
		baseURL: normalizeBaseURL(baseURL),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	if err := s.store.Create(ctx, n); err != nil {
		return err
	}
	s.deliverMail(ctx, n)
	return nil
}

// List returns the actor's notifications and their unread count.
func (s *NotificationService) List(ctx context.Context, actor Actor, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	if !actor.valid() {
		return nil, 0, newError(KindForbidden, "unknown user")
	}
	limit, offset = utils.ClampPage(limit, offset)

	items, err := s.store.ListForRecipient(ctx, actor.UserID, unreadOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.store.CountUnread(ctx, actor.UserID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, actor Actor, id string) error {
	if !actor.valid() {
		return newError(KindForbidden, "unknown user")
	}
	return s.store.MarkRead(ctx, id, actor.UserID, s.now())
}

func (s *NotificationService) deliverMail(ctx context.Context, n *models.Notification) {
	if s.mailer == nil || !s.mailer.Enabled() || s.users == nil {
		return
	}

	recipient, err := s.users.FindSummary(ctx, n.RecipientID)
	if err != nil {
		log.Printf("[notification] recipient lookup failed (notification=%s user=%s): %v", n.ID, n.RecipientID, err)
		return
	}
	email := strings.TrimSpace(recipient.Email)
	if email == "" {
		return
	}

	html := buildNotificationEmailHTML(n.Title, recipient.Name, n.Message, s.relatedLink(n))
	if err := s.mailer.SendMail([]string{email}, n.Title, html); err != nil {
		log.Printf("[mail] notification email send failed (subject=%q to=%s): %v", n.Title, email, err)
	}
}

func (s *NotificationService) relatedLink(n *models.Notification) string {
	if s.baseURL == "" || n.RelatedTo.EntityID == "" {
		return ""
	}
	return s.baseURL + "crop-submissions/" + n.RelatedTo.EntityID
}

func normalizeBaseURL(candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return trimmed
}

func buildNotificationEmailHTML(subject, recipientName, message, link string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "Farmer"
	}

	escapedSubject := template.HTMLEscapeString(subject)
	escapedGreeting := template.HTMLEscapeString(fmt.Sprintf("Dear %s,", name))
	escapedMessage := template.HTMLEscapeString(strings.TrimSpace(message))
	escapedMessage = strings.ReplaceAll(strings.ReplaceAll(escapedMessage, "\r\n", "\n"), "\r", "\n")
	escapedMessage = strings.ReplaceAll(escapedMessage, "\n", "<br />")

	linkHTML := ""
	if link != "" {
		escapedLink := template.HTMLEscapeString(link)
		linkHTML = fmt.Sprintf(`<p style="margin:16px 0 0 0;font-size:14px;"><a href="%s" style="color:#15803d;">View submission</a></p>`, escapedLink)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body style="margin:0;padding:0;background-color:#f9fafb;font-family:'Segoe UI',Tahoma,Arial,sans-serif;">
<div style="max-width:640px;margin:0 auto;padding:24px 20px;">
  <div style="background-color:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px 24px 28px 24px;">
    <p style="margin:0 0 16px 0;font-size:16px;line-height:1.7;color:#111827;">%s</p>
    <p style="margin:0;font-size:16px;line-height:1.7;color:#111827;word-break:break-word;">%s</p>
    %s
  </div>
</div>
</body>
</html>`, escapedSubject, escapedGreeting, escapedMessage, linkHTML)
}
