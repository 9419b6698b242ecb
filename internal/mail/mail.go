// Package mail composes plain-text notifications for lifecycle changes.
// Delivery is a collaborator behind the Notifier interface; the default
// implementation only logs the composed content.
package mail

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/types"
)

// A Notifier delivers composed notification content.
type Notifier interface {
	SummaryStatusChanged(user string, month types.Month, s status.Status, comments string)
	InvoiceStatusChanged(user string, month types.Month, s status.Status, comments string)
}

// SummaryContent returns subject and body for a summary status change.
func SummaryContent(user string, month types.Month, s status.Status, comments string) (string, string) {
	subject := fmt.Sprintf("Timesheet %s - %s", month, s)

	body := fmt.Sprintf(
		"Hello %s,\n\nYour timesheet for %s is now %s.\n", user, month, s)
	if comments != "" {
		body += fmt.Sprintf("\nComments:\n%s\n", comments)
	}
	body += "\nBest regards,\nWorklog Zero"

	return subject, body
}

// InvoiceContent returns subject and body for an invoice status change.
func InvoiceContent(user string, month types.Month, s status.Status, comments string) (string, string) {
	subject := fmt.Sprintf("Invoice %s - %s", month, s)

	body := fmt.Sprintf(
		"Hello %s,\n\nYour invoice for %s is now %s.\n", user, month, s)
	if comments != "" {
		body += fmt.Sprintf("\nComments:\n%s\n", comments)
	}
	body += "\nBest regards,\nWorklog Zero"

	return subject, body
}

// LogNotifier writes the composed content to the log instead of sending it.
type LogNotifier struct{}

func (LogNotifier) SummaryStatusChanged(user string, month types.Month, s status.Status, comments string) {
	subject, _ := SummaryContent(user, month, s, comments)
	log.Info().Str("user", user).Str("subject", subject).Msg("summary notification")
}

func (LogNotifier) InvoiceStatusChanged(user string, month types.Month, s status.Status, comments string) {
	subject, _ := InvoiceContent(user, month, s, comments)
	log.Info().Str("user", user).Str("subject", subject).Msg("invoice notification")
}
