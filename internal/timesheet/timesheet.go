// Package timesheet implements the monthly reconciliation engine: merging
// submitted day entries into the stored record set, keeping summary totals
// consistent, accepting document-based reports and driving the approval
// lifecycle of summaries and invoices.
package timesheet

import (
	"github.com/worklog-zero/backend/internal/calendar"
	"github.com/worklog-zero/backend/internal/mail"
	"github.com/worklog-zero/backend/internal/storage"
)

var (
	files    storage.Store
	holidays calendar.HolidayProvider = calendar.FixedHolidays{}
	notify   mail.Notifier            = mail.LogNotifier{}
)

// Configure sets the collaborators the engine works against. It must be
// called once during startup, before any request is served.
func Configure(store storage.Store, provider calendar.HolidayProvider, notifier mail.Notifier) {
	files = store

	if provider != nil {
		holidays = provider
	}

	if notifier != nil {
		notify = notifier
	}
}

// HolidayCalendar returns the provider the engine is configured with.
func HolidayCalendar() calendar.HolidayProvider {
	return holidays
}

// Files returns the document store the engine is configured with.
func Files() storage.Store {
	return files
}
