package models

import "strings"

// SubmissionStatus is the workflow position of a crop submission.
type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "submitted"
	StatusApproved  SubmissionStatus = "approved"
	StatusScheduled SubmissionStatus = "scheduled"
	StatusCollected SubmissionStatus = "collected"
	StatusRejected  SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusApproved, StatusScheduled, StatusCollected, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once no further transition is defined.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusCollected || s == StatusRejected
}

// NotifiesFarmer returns true for statuses the farmer is told about.
func (s SubmissionStatus) NotifiesFarmer() bool {
	switch s {
	case StatusApproved, StatusScheduled, StatusCollected, StatusRejected:
		return true
	default:
		return false
	}
}

// CanMoveTo allows any move between known statuses except leaving a terminal
// one or returning to submitted. Re-sending the current status is allowed.
func (s SubmissionStatus) CanMoveTo(next SubmissionStatus) bool {
	if !next.IsValid() {
		return false
	}
	if next == s {
		return true
	}
	if s.IsTerminal() || next == StatusSubmitted {
		return false
	}
	return true
}

// ParseSubmissionStatus normalizes case and surrounding whitespace.
func ParseSubmissionStatus(raw string) SubmissionStatus {
	return SubmissionStatus(strings.ToLower(strings.TrimSpace(raw)))
}

// GetAllSubmissionStatuses returns all valid statuses in workflow order.
func GetAllSubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		StatusSubmitted,
		StatusApproved,
		StatusScheduled,
		StatusCollected,
		StatusRejected,
	}
}
