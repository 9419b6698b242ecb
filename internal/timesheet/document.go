package timesheet

import (
	"fmt"
	"math"

	"github.com/worklog-zero/backend/internal/calendar"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/storage"
	"github.com/worklog-zero/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// hoursTolerance absorbs floating point noise when comparing a reported
// total against the expected monthly hours.
const hoursTolerance = 0.01

// Document is an uploaded file payload.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// AcceptDocumentReport stores a PDF timesheet for a month and replaces the
// itemized record set with the reported total.
//
// The reported total must match the expected hours of the month, workdays
// times the standard day. On a mismatch, and on any later failure, the
// stored file is removed again so a failed upload leaves no trace.
//
// Accepted reports collapse the month to a single placeholder record dated
// the first, carrying the full reported total as regular time. Support
// hours are reported separately and stay untouched.
func AcceptDocumentReport(user string, month types.Month, reported float64, doc Document) (models.MonthlySummary, error) {
	if len(doc.Data) == 0 {
		return models.MonthlySummary{}, ErrFileEmpty
	}

	if doc.ContentType != "application/pdf" {
		return models.MonthlySummary{}, ErrFileType
	}

	unlock := lockMonth(user, month)
	defer unlock()

	path := storage.TimesheetPath(user, month)
	err := files.Save(path, doc.Data)
	if err != nil {
		return models.MonthlySummary{}, err
	}

	cal := calendar.ForMonth(month, holidays)
	expected := cal.ExpectedHours(calendar.StandardDailyHours)
	if math.Abs(reported-expected) > hoursTolerance {
		_ = files.Delete(path)
		return models.MonthlySummary{}, fmt.Errorf(
			"reported hours do not match: expected %.2f for %d workdays in %s, got %.2f",
			expected, cal.Workdays(), month, reported)
	}

	var summary models.MonthlySummary
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		summary, err = loadOrCreateSummary(tx, user, month)
		if err != nil {
			return err
		}

		summary.ReportedTotalHours = &reported
		summary.TotalHours = reported
		summary.RegularHours = reported
		summary.HolidayHours = 0
		summary.DocumentPath = path

		err = collapseToPlaceholder(tx, &summary, reported)
		if err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(&summary).Error
	})
	if err != nil {
		_ = files.Delete(path)
		return models.MonthlySummary{}, asConflict(err)
	}

	return WithRecords(summary)
}

// collapseToPlaceholder replaces the owned records of a summary with a
// single record dated the first of the month, carrying the reported total.
// A stored record for the first is reused; deletions are permanent so the
// per-day uniqueness of records is not blocked by soft-deleted rows.
func collapseToPlaceholder(tx *gorm.DB, summary *models.MonthlySummary, reported float64) error {
	first := summary.Month.First()

	existing, err := monthRecords(tx, summary.UserName, summary.Month)
	if err != nil {
		return err
	}

	firstKey := first.Format("2006-01-02")
	placeholder, ok := existing[firstKey]
	if !ok {
		placeholder = models.DailyRecord{UserName: summary.UserName, Date: first}
	}

	placeholder.SummaryID = &summary.ID
	placeholder.HoursWorked = reported
	placeholder.SupportHours = summary.SupportHours
	placeholder.HolidayCategoryID = nil
	placeholder.Note = fmt.Sprintf("Uploaded document timesheet: %s", summary.DocumentPath)

	err = tx.Save(&placeholder).Error
	if err != nil {
		return err
	}

	return tx.Unscoped().
		Where("summary_id = ? AND id != ?", summary.ID, placeholder.ID).
		Delete(&models.DailyRecord{}).Error
}
