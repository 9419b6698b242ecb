package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record lifecycle states. They mirror the owning summary's status on
// submission but do not have to equal it afterwards.
const (
	RecordPending  = "PENDING"
	RecordApproved = "APPROVED"
	RecordRejected = "REJECTED"
)

// DailyRecord is the working time reported for a single day.
//
// A record is owned by at most one monthly summary. SummaryID is nullable:
// a record whose date drops out of a later submission is detached, not
// deleted, so the per-day history survives.
type DailyRecord struct {
	DefaultModel
	UserName          string           `json:"userName" gorm:"uniqueIndex:record_user_date" example:"astrid"`
	Date              time.Time        `json:"date" gorm:"uniqueIndex:record_user_date" example:"2024-05-02T00:00:00Z"`
	SummaryID         *uuid.UUID       `json:"summaryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // Owning summary, null when detached
	Summary           *MonthlySummary  `json:"-"`
	HoursWorked       float64          `json:"hoursWorked" example:"8"`
	SupportHours      float64          `json:"supportHours" example:"1.5"` // Extra support time on top of the worked hours
	HolidayCategoryID *uuid.UUID       `json:"holidayCategoryId"`          // Set when the day was not a regular working day
	HolidayCategory   *HolidayCategory `json:"-"`
	Note              string           `json:"note" example:"On-call support after release"`
	Status            string           `json:"status" gorm:"default:PENDING" example:"PENDING"`
}

// BeforeSave normalizes the record and rejects invalid hours before any
// mutation reaches the database.
func (r *DailyRecord) BeforeSave(_ *gorm.DB) error {
	if strings.TrimSpace(r.UserName) == "" {
		return ErrUserNameMissing
	}

	if r.HoursWorked < 0 || r.SupportHours < 0 {
		return ErrHoursNegative
	}

	r.Note = strings.TrimSpace(r.Note)

	// Dates are day-granular, stored as UTC midnight
	r.Date = time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)

	if r.Status == "" {
		r.Status = RecordPending
	}

	return nil
}

func (r *DailyRecord) AfterFind(tx *gorm.DB) error {
	r.Date = r.Date.In(time.UTC)
	return r.DefaultModel.AfterFind(tx)
}

// Detach clears the owner reference so the record survives outside the
// summary it belonged to.
func (r *DailyRecord) Detach(tx *gorm.DB) error {
	r.SummaryID = nil
	return tx.Model(r).Select("SummaryID").Updates(map[string]interface{}{"summary_id": nil}).Error
}
