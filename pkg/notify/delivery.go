package notify

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedscout/pkg/domain"
)

// LogDelivery is a Delivery that only logs accepted requests, the
// default when no real delivery collaborator is wired in
type LogDelivery struct{}

// Deliver logs the notification request
func (LogDelivery) Deliver(_ context.Context, req domain.NotificationRequest) error {
	lgr.Printf("[INFO] notification: %q -> %s (scheduled %s)", req.Title, req.TargetURL,
		req.ScheduledAt.Format("2006-01-02 15:04"))
	return nil
}
