package models

import (
	"strings"
	"time"

	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/types"
	"gorm.io/gorm"
)

// MonthlySummary is the per-(user, month) aggregate and approval record.
//
// The hour totals are derived from the owned records and are never edited
// by hand. ReportedTotalHours is the alternative externally-verified total:
// when it is set it is authoritative and the itemized records have been
// collapsed to a single placeholder.
type MonthlySummary struct {
	DefaultModel
	UserName           string        `json:"userName" gorm:"uniqueIndex:summary_user_month" example:"astrid"`
	Month              types.Month   `json:"month" gorm:"uniqueIndex:summary_user_month" example:"2024-05"`
	Status             status.Status `json:"status" gorm:"default:DRAFT" example:"DRAFT"`
	TotalHours         float64       `json:"totalHours" example:"168"`
	RegularHours       float64       `json:"regularHours" example:"152"`
	HolidayHours       float64       `json:"holidayHours" example:"16"`
	SupportHours       float64       `json:"supportHours" example:"4.5"`
	ReportedTotalHours *float64      `json:"reportedTotalHours"` // Total from an uploaded document, authoritative when set
	SubmissionDate     *time.Time    `json:"submissionDate"`
	ApprovalDate       *time.Time    `json:"approvalDate"`
	PaymentDate        *time.Time    `json:"paymentDate"`
	Comments           string        `json:"comments"`
	DocumentPath       string        `json:"documentPath,omitempty"`
	Records            []DailyRecord `json:"records" gorm:"foreignKey:SummaryID"`
}

func (s *MonthlySummary) BeforeSave(_ *gorm.DB) error {
	if strings.TrimSpace(s.UserName) == "" {
		return ErrUserNameMissing
	}

	s.Comments = strings.TrimSpace(s.Comments)

	if s.Status == "" {
		s.Status = status.Draft
	}

	return nil
}

// AfterDelete removes the owned records. Detached records reference no
// summary and are untouched.
func (s *MonthlySummary) AfterDelete(tx *gorm.DB) error {
	return tx.Where("summary_id = ?", s.ID).Delete(&DailyRecord{}).Error
}

// Transition applies a lifecycle action under the summary policy and
// stamps the matching date field.
func (s *MonthlySummary) Transition(action status.Action, comment string) error {
	next, err := status.SummaryPolicy.Apply(s.Status, action, comment)
	if err != nil {
		return err
	}

	now := time.Now().In(time.UTC)
	switch action {
	case status.Submit:
		s.SubmissionDate = &now
	case status.Approve:
		s.ApprovalDate = &now
	case status.Pay:
		s.PaymentDate = &now
	}

	if comment = strings.TrimSpace(comment); comment != "" {
		s.Comments = comment
	}

	s.Status = next
	return nil
}
