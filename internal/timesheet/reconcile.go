package timesheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one submitted day of a monthly batch.
type Entry struct {
	Date              string     `json:"date" binding:"required" example:"2024-05-02"`
	HoursWorked       float64    `json:"hoursWorked" example:"8"`
	SupportHours      float64    `json:"supportHours" example:"1.5"`
	HolidayCategoryID *uuid.UUID `json:"holidayCategoryId"`
	Note              string     `json:"note" example:"On-call support after release"`
}

// Totals are the aggregated hours of a record set. A record counts as
// holiday time when a holiday category is attached, as regular time
// otherwise. Support hours accumulate independently of that split.
type Totals struct {
	Total   float64
	Regular float64
	Holiday float64
	Support float64
}

// Aggregate computes the totals over a record set.
func Aggregate(records []models.DailyRecord) Totals {
	var t Totals
	for _, record := range records {
		t.Total += record.HoursWorked
		t.Support += record.SupportHours

		if record.HolidayCategoryID != nil {
			t.Holiday += record.HoursWorked
		} else {
			t.Regular += record.HoursWorked
		}
	}

	return t
}

// Reconcile merges a batch of day entries into the stored month of a user
// and recomputes the summary totals.
//
// The batch is authoritative for the month: stored records matching a
// submitted date are updated in place, dates new to the month are created,
// and stored records absent from the batch are detached from the summary.
// An empty batch therefore detaches every record and zeroes the totals.
//
// A rejected month is reopened to draft before the merge. With submit set,
// the summary is submitted afterwards; resubmitting an already submitted
// month merges the entries without touching the status.
func Reconcile(user string, month types.Month, entries []Entry, submit bool) (models.MonthlySummary, error) {
	unlock := lockMonth(user, month)
	defer unlock()

	parsed, err := parseEntries(month, entries)
	if err != nil {
		return models.MonthlySummary{}, err
	}

	var summary models.MonthlySummary
	var submitted bool
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		summary, err = loadOrCreateSummary(tx, user, month)
		if err != nil {
			return err
		}

		if summary.Status == status.Rejected {
			err = summary.Transition(status.Reopen, "")
			if err != nil {
				return err
			}
		}

		existing, err := monthRecords(tx, user, month)
		if err != nil {
			return err
		}

		kept := make([]models.DailyRecord, 0, len(parsed))
		for date, entry := range parsed {
			record, ok := existing[date]
			if !ok {
				record = models.DailyRecord{UserName: user, Date: entry.date}
			}

			record.SummaryID = &summary.ID
			record.HoursWorked = entry.HoursWorked
			record.SupportHours = entry.SupportHours
			record.HolidayCategoryID = entry.HolidayCategoryID
			record.Note = entry.Note

			err = tx.Save(&record).Error
			if err != nil {
				return err
			}

			kept = append(kept, record)
		}

		for date, record := range existing {
			if _, ok := parsed[date]; ok {
				continue
			}

			err = record.Detach(tx)
			if err != nil {
				return err
			}
		}

		totals := Aggregate(kept)
		summary.TotalHours = totals.Total
		summary.RegularHours = totals.Regular
		summary.HolidayHours = totals.Holiday
		summary.SupportHours = totals.Support

		// Itemized submissions supersede a previously reported document total
		summary.ReportedTotalHours = nil

		if submit && summary.Status == status.Draft {
			err = summary.Transition(status.Submit, "")
			if err != nil {
				return err
			}
			submitted = true
		}

		return tx.Omit(clause.Associations).Save(&summary).Error
	})
	if err != nil {
		return models.MonthlySummary{}, asConflict(err)
	}

	if submitted {
		notify.SummaryStatusChanged(user, month, summary.Status, summary.Comments)
	}

	return WithRecords(summary)
}

// WithRecords returns the summary with its owned records loaded.
func WithRecords(summary models.MonthlySummary) (models.MonthlySummary, error) {
	err := models.DB.
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		First(&summary, summary.ID).Error
	if err != nil {
		return models.MonthlySummary{}, err
	}

	return summary, nil
}

// parsedEntry is an Entry with its date resolved.
type parsedEntry struct {
	Entry
	date time.Time
}

// parseEntries validates the batch and keys it by ISO date. A date that
// appears twice keeps the last occurrence, matching a map-shaped client
// payload.
func parseEntries(month types.Month, entries []Entry) (map[string]parsedEntry, error) {
	parsed := make(map[string]parsedEntry, len(entries))
	for i, entry := range entries {
		date, err := time.ParseInLocation("2006-01-02", entry.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: field \"date\" of entry %d is %q, expected YYYY-MM-DD", ErrInvalidEntry, i, entry.Date)
		}

		if !month.Contains(date) {
			return nil, fmt.Errorf("%w: field \"date\" of entry %d is %q, outside of %s", ErrInvalidEntry, i, entry.Date, month)
		}

		if entry.HoursWorked < 0 || entry.SupportHours < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative hours", ErrInvalidEntry, i)
		}

		if entry.HolidayCategoryID != nil {
			var category models.HolidayCategory
			err = models.DB.First(&category, *entry.HolidayCategoryID).Error
			if err != nil {
				return nil, err
			}
		}

		parsed[entry.Date] = parsedEntry{Entry: entry, date: date}
	}

	return parsed, nil
}

// loadOrCreateSummary fetches the summary of a (user, month), creating a
// draft when the month is new.
func loadOrCreateSummary(tx *gorm.DB, user string, month types.Month) (models.MonthlySummary, error) {
	var summary models.MonthlySummary
	err := tx.Where(&models.MonthlySummary{UserName: user, Month: month}).First(&summary).Error
	if err == nil {
		return summary, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.MonthlySummary{}, err
	}

	summary = models.MonthlySummary{UserName: user, Month: month, Status: status.Draft}
	err = tx.Create(&summary).Error
	if err != nil {
		return models.MonthlySummary{}, err
	}

	return summary, nil
}

// monthRecords fetches all records of a user within a month, keyed by ISO
// date. Detached records are included so that a resubmitted date reclaims
// its old record instead of colliding with it.
func monthRecords(tx *gorm.DB, user string, month types.Month) (map[string]models.DailyRecord, error) {
	var records []models.DailyRecord
	err := tx.
		Where("user_name = ? AND date >= ? AND date < ?", user, month.First(), month.First().AddDate(0, 1, 0)).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]models.DailyRecord, len(records))
	for _, record := range records {
		byDate[record.Date.Format("2006-01-02")] = record
	}

	return byDate, nil
}

// asConflict rewrites unique constraint violations into the retryable
// conflict error. With the month lock held they can only come from a
// concurrent writer outside this process.
func asConflict(err error) error {
	if errors.Is(err, models.ErrRecordDateNotUnique) || errors.Is(err, models.ErrSummaryMonthNotUnique) {
		return fmt.Errorf("%w: %s", ErrConflict, err)
	}

	return err
}
