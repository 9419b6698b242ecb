package timesheet

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/storage"
	"github.com/worklog-zero/backend/internal/types"
)

// SubmitInvoice stores the invoice file and creates the invoice in the
// submitted state. One invoice per (user, month) is allowed; resubmission
// requires an admin to remove the first one.
func SubmitInvoice(user string, month types.Month, amount decimal.Decimal, hours float64, number string, doc Document) (models.SubcontractorInvoice, error) {
	if len(doc.Data) == 0 {
		return models.SubcontractorInvoice{}, ErrFileEmpty
	}

	unlock := lockMonth(user, month)
	defer unlock()

	var existing models.SubcontractorInvoice
	err := models.DB.Where(&models.SubcontractorInvoice{UserName: user, Month: month}).First(&existing).Error
	if err == nil {
		return models.SubcontractorInvoice{}, ErrInvoiceExists
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.SubcontractorInvoice{}, err
	}

	path := storage.InvoicePath(user, month, doc.Name, time.Now())
	err = files.Save(path, doc.Data)
	if err != nil {
		return models.SubcontractorInvoice{}, err
	}

	invoice := models.SubcontractorInvoice{
		UserName:        user,
		Month:           month,
		Amount:          amount,
		HoursWorked:     hours,
		InvoiceNumber:   number,
		FilePath:        path,
		FileName:        doc.Name,
		FileContentType: doc.ContentType,
		Status:          status.Submitted,
	}

	err = models.DB.Create(&invoice).Error
	if err != nil {
		_ = files.Delete(path)
		return models.SubcontractorInvoice{}, err
	}

	return invoice, nil
}

// UpdateInvoiceStatus moves an invoice to the requested target status and
// notifies the owner.
func UpdateInvoiceStatus(id uuid.UUID, target status.Status, comment string) (models.SubcontractorInvoice, error) {
	action, err := status.ActionForStatus(target)
	if err != nil {
		return models.SubcontractorInvoice{}, err
	}

	// The first read only resolves the lock key
	var invoice models.SubcontractorInvoice
	err = models.DB.First(&invoice, id).Error
	if err != nil {
		return models.SubcontractorInvoice{}, err
	}

	unlock := lockMonth(invoice.UserName, invoice.Month)
	defer unlock()

	// Re-read under the lock so the state guard runs on the current row
	err = models.DB.First(&invoice, id).Error
	if err != nil {
		return models.SubcontractorInvoice{}, err
	}

	err = invoice.Transition(action, comment)
	if err != nil {
		return models.SubcontractorInvoice{}, err
	}

	err = models.DB.Save(&invoice).Error
	if err != nil {
		return models.SubcontractorInvoice{}, err
	}

	notify.InvoiceStatusChanged(invoice.UserName, invoice.Month, invoice.Status, invoice.Comments)

	return invoice, nil
}
