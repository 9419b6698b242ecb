package v1

import (
	"github.com/shopspring/decimal"
	"github.com/worklog-zero/backend/internal/models"
)

type InvoiceResponse struct {
	Data  *models.SubcontractorInvoice `json:"data"`
	Error *string                      `json:"error" example:"there is no subcontractor invoice matching your query"`
}

type InvoiceListResponse struct {
	Data  []models.SubcontractorInvoice `json:"data"`
	Error *string                       `json:"error" example:"there is no subcontractor invoice matching your query"`
}

// InvoiceStatusEditable is the payload of an invoice status update.
type InvoiceStatusEditable struct {
	Status   string `json:"status" binding:"required" example:"APPROVED"`
	Comments string `json:"comments" example:"Amount does not match the agreed rate"`
}

// InvoiceMonthSummary aggregates the invoices of one month.
type InvoiceMonthSummary struct {
	Month        string          `json:"month" example:"2024-05"`
	Count        int             `json:"count" example:"4"`
	TotalAmount  decimal.Decimal `json:"totalAmount" example:"21600.50"`
	TotalHours   float64         `json:"totalHours" example:"640"`
	StatusCounts map[string]int  `json:"statusCounts"`
}

type InvoiceMonthSummaryResponse struct {
	Data  *InvoiceMonthSummary `json:"data"`
	Error *string              `json:"error" example:"the year and month path parameters must form a valid month"`
}
