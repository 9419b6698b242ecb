package timesheet_test

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/timesheet"
)

func (suite *TestSuiteStandard) TestSubmitInvoice() {
	invoice, err := timesheet.SubmitInvoice("finn", may, decimal.RequireFromString("5400.50"), 160, "INV-2024-0005", timesheet.Document{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 invoice"),
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), status.Submitted, invoice.Status)
	assert.Equal(suite.T(), "INV-2024-0005", invoice.InvoiceNumber)
	assert.True(suite.T(), suite.fileExists(invoice.FilePath))
}

func (suite *TestSuiteStandard) TestSubmitInvoiceOnePerMonth() {
	doc := timesheet.Document{Name: "invoice.pdf", ContentType: "application/pdf", Data: []byte("content")}

	_, err := timesheet.SubmitInvoice("finn", may, decimal.NewFromInt(5000), 160, "INV-1", doc)
	require.NoError(suite.T(), err)

	_, err = timesheet.SubmitInvoice("finn", may, decimal.NewFromInt(5000), 160, "INV-2", doc)
	assert.ErrorIs(suite.T(), err, timesheet.ErrInvoiceExists)

	// Other months and other users are unaffected
	_, err = timesheet.SubmitInvoice("finn", may.AddDate(0, 1), decimal.NewFromInt(5000), 160, "INV-3", doc)
	assert.NoError(suite.T(), err)

	_, err = timesheet.SubmitInvoice("ines", may, decimal.NewFromInt(4000), 120, "INV-4", doc)
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestSubmitInvoiceEmptyFile() {
	_, err := timesheet.SubmitInvoice("finn", may, decimal.NewFromInt(5000), 160, "INV-1", timesheet.Document{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
	})
	assert.ErrorIs(suite.T(), err, timesheet.ErrFileEmpty)
}

func (suite *TestSuiteStandard) TestUpdateInvoiceStatus() {
	invoice, err := timesheet.SubmitInvoice("finn", may, decimal.NewFromInt(5000), 160, "INV-1", timesheet.Document{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
		Data:        []byte("content"),
	})
	require.NoError(suite.T(), err)

	invoice, err = timesheet.UpdateInvoiceStatus(invoice.ID, status.Approved, "")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), status.Approved, invoice.Status)
	require.NotNil(suite.T(), invoice.ApprovalDate)

	invoice, err = timesheet.UpdateInvoiceStatus(invoice.ID, status.Paid, "")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), status.Paid, invoice.Status)

	require.Len(suite.T(), suite.notify.Sent, 2)
	assert.Equal(suite.T(), "invoice", suite.notify.Sent[0].Kind)
}

func (suite *TestSuiteStandard) TestUpdateInvoiceStatusConcurrentDecisions() {
	invoice, err := timesheet.SubmitInvoice("finn", may, decimal.NewFromInt(5000), 160, "INV-1", timesheet.Document{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
		Data:        []byte("content"),
	})
	require.NoError(suite.T(), err)

	// Only one of two racing decisions may pass the submitted guard
	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = timesheet.UpdateInvoiceStatus(invoice.ID, status.Approved, "")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = timesheet.UpdateInvoiceStatus(invoice.ID, status.Rejected, "duplicate")
	}()
	wg.Wait()

	if errs[0] == nil {
		assert.ErrorIs(suite.T(), errs[1], status.ErrWrongSourceState)
	} else {
		assert.ErrorIs(suite.T(), errs[0], status.ErrWrongSourceState)
		assert.NoError(suite.T(), errs[1])
	}

	assert.Len(suite.T(), suite.notify.Sent, 1)
}

func (suite *TestSuiteStandard) TestUpdateInvoiceStatusGuards() {
	invoice, err := timesheet.SubmitInvoice("finn", may, decimal.NewFromInt(5000), 160, "INV-1", timesheet.Document{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
		Data:        []byte("content"),
	})
	require.NoError(suite.T(), err)

	_, err = timesheet.UpdateInvoiceStatus(invoice.ID, status.Paid, "")
	assert.ErrorIs(suite.T(), err, status.ErrWrongSourceState)

	_, err = timesheet.UpdateInvoiceStatus(invoice.ID, status.Draft, "")
	assert.Error(suite.T(), err, "no action leads to DRAFT")
}
