package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/types"
	"gorm.io/gorm"
)

// SubcontractorInvoice is the invoice variant of the monthly approval
// lifecycle. It is not linked to a MonthlySummary; policy allows one per
// (user, month) but this is checked in code, not as a constraint, so an
// invoice can be resubmitted after an admin removed the first one.
type SubcontractorInvoice struct {
	DefaultModel
	UserName        string          `json:"userName" example:"finn"`
	Month           types.Month     `json:"month" example:"2024-05"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"5400.50"`
	HoursWorked     float64         `json:"hoursWorked" example:"160"`
	InvoiceNumber   string          `json:"invoiceNumber" example:"INV-2024-0005"`
	SubmissionDate  time.Time       `json:"submissionDate"`
	ApprovalDate    *time.Time      `json:"approvalDate"`
	PaymentDate     *time.Time      `json:"paymentDate"`
	FilePath        string          `json:"filePath"`
	FileName        string          `json:"fileName"`
	FileContentType string          `json:"fileContentType"`
	Status          status.Status   `json:"status" gorm:"default:SUBMITTED" example:"SUBMITTED"`
	Comments        string          `json:"comments"`
}

func (i *SubcontractorInvoice) BeforeSave(_ *gorm.DB) error {
	if strings.TrimSpace(i.UserName) == "" {
		return ErrUserNameMissing
	}

	if i.HoursWorked < 0 {
		return ErrHoursNegative
	}

	i.Comments = strings.TrimSpace(i.Comments)

	if i.Status == "" {
		i.Status = status.Submitted
	}

	if i.SubmissionDate.IsZero() {
		i.SubmissionDate = time.Now().In(time.UTC)
	}

	return nil
}

// Transition applies a lifecycle action under the invoice policy. The
// invoice policy has no comment preconditions; a non-empty comment is
// attached regardless of the action.
func (i *SubcontractorInvoice) Transition(action status.Action, comment string) error {
	next, err := status.InvoicePolicy.Apply(i.Status, action, comment)
	if err != nil {
		return err
	}

	now := time.Now().In(time.UTC)
	switch action {
	case status.Approve:
		i.ApprovalDate = &now
	case status.Pay:
		i.PaymentDate = &now
	}

	if comment = strings.TrimSpace(comment); comment != "" {
		i.Comments = comment
	}

	i.Status = next
	return nil
}
