package domain

import "time"

// NotificationRequest is the scheduling decision handed to the delivery
// collaborator. This package decides whether and when, never how.
type NotificationRequest struct {
	Title       string
	Body        string
	TargetURL   string
	ScheduledAt time.Time
}
