package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/timesheet"
	"github.com/worklog-zero/backend/internal/types"
)

func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	admin := identity.RequireRole(identity.RoleAdmin)

	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetInvoices)
		r.POST("", identity.RequireRole(identity.RoleSubcontractor), CreateInvoice)
	}
	{
		r.GET("/month/:year/:month", admin, GetMonthInvoices)
		r.GET("/summary/:year/:month", admin, GetInvoiceMonthSummary)
	}
	{
		r.PATCH("/:id/status", admin, UpdateInvoiceStatus)
	}
}

// CreateInvoice submits a subcontractor invoice
//
//	@Summary		Submit invoice
//	@Description	Accepts an invoice file with its metadata. One invoice per month is allowed.
//	@Tags			Invoices
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		201				{object}	InvoiceResponse
//	@Failure		400				{object}	InvoiceResponse
//	@Failure		409				{object}	InvoiceResponse
//	@Param			month			formData	string	true	"Month in YYYY-MM format"
//	@Param			amount			formData	string	true	"Invoiced amount"
//	@Param			hoursWorked		formData	number	true	"Hours the invoice covers"
//	@Param			invoiceNumber	formData	string	true	"Invoice number"
//	@Param			file			formData	file	true	"Invoice file"
//	@Router			/v1/invoices [post]
func CreateInvoice(c *gin.Context) {
	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, InvoiceResponse{Error: &s})
		return
	}

	month, err := types.ParseMonth(c.PostForm("month"))
	if err != nil {
		s := "the month form field must be in YYYY-MM format"
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil || amount.IsNegative() {
		s := "the amount form field must be a non-negative decimal number"
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	hours, err := strconv.ParseFloat(c.PostForm("hoursWorked"), 64)
	if err != nil || hours < 0 {
		s := "the hoursWorked form field must be a non-negative number"
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		s := httputil.ErrNoFilePost.Error()
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	file, err := header.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	invoice, err := timesheet.SubmitInvoice(id.Name, month, amount, hours, c.PostForm("invoiceNumber"), timesheet.Document{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), InvoiceResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, InvoiceResponse{Data: &invoice})
}

// GetInvoices returns the calling user's invoices
//
//	@Summary		List own invoices
//	@Tags			Invoices
//	@Produce		json
//	@Success		200	{object}	InvoiceListResponse
//	@Failure		500	{object}	InvoiceListResponse
//	@Router			/v1/invoices [get]
func GetInvoices(c *gin.Context) {
	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, InvoiceListResponse{Error: &s})
		return
	}

	var invoices []models.SubcontractorInvoice
	err = models.DB.
		Where("user_name = ?", id.Name).
		Order("date(month) DESC").
		Find(&invoices).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), InvoiceListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, InvoiceListResponse{Data: invoices})
}

// GetMonthInvoices returns all invoices of a month
//
//	@Summary		List invoices of a month
//	@Tags			Invoices
//	@Produce		json
//	@Success		200		{object}	InvoiceListResponse
//	@Failure		400		{object}	InvoiceListResponse
//	@Failure		500		{object}	InvoiceListResponse
//	@Param			year	path		int	true	"Year"
//	@Param			month	path		int	true	"Month, 1 to 12"
//	@Router			/v1/invoices/month/{year}/{month} [get]
func GetMonthInvoices(c *gin.Context) {
	month, ok := bindMonthURI(c)
	if !ok {
		return
	}

	var invoices []models.SubcontractorInvoice
	err := models.DB.
		Where("month = ?", month).
		Order("user_name ASC").
		Find(&invoices).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), InvoiceListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, InvoiceListResponse{Data: invoices})
}

// GetInvoiceMonthSummary aggregates the invoices of a month
//
//	@Summary		Invoice month summary
//	@Description	Returns the invoice count, decimal amount total, hour total and per-status counts of a month
//	@Tags			Invoices
//	@Produce		json
//	@Success		200		{object}	InvoiceMonthSummaryResponse
//	@Failure		400		{object}	InvoiceMonthSummaryResponse
//	@Failure		500		{object}	InvoiceMonthSummaryResponse
//	@Param			year	path		int	true	"Year"
//	@Param			month	path		int	true	"Month, 1 to 12"
//	@Router			/v1/invoices/summary/{year}/{month} [get]
func GetInvoiceMonthSummary(c *gin.Context) {
	month, ok := bindMonthURI(c)
	if !ok {
		return
	}

	var invoices []models.SubcontractorInvoice
	err := models.DB.Where("month = ?", month).Find(&invoices).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), InvoiceMonthSummaryResponse{Error: &s})
		return
	}

	summary := InvoiceMonthSummary{
		Month:        month.String(),
		Count:        len(invoices),
		TotalAmount:  decimal.Zero,
		StatusCounts: make(map[string]int),
	}

	for _, invoice := range invoices {
		summary.TotalAmount = summary.TotalAmount.Add(invoice.Amount)
		summary.TotalHours += invoice.HoursWorked
		summary.StatusCounts[string(invoice.Status)]++
	}

	c.JSON(http.StatusOK, InvoiceMonthSummaryResponse{Data: &summary})
}

// UpdateInvoiceStatus moves an invoice through its lifecycle
//
//	@Summary		Update invoice status
//	@Description	Sets the status of an invoice to APPROVED, REJECTED or PAID
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	InvoiceResponse
//	@Failure		400		{object}	InvoiceResponse
//	@Failure		404		{object}	InvoiceResponse
//	@Failure		409		{object}	InvoiceResponse
//	@Param			id		path		string					true	"ID of the invoice"
//	@Param			body	body		InvoiceStatusEditable	true	"Target status"
//	@Router			/v1/invoices/{id}/status [patch]
func UpdateInvoiceStatus(c *gin.Context) {
	invoiceID, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	var body InvoiceStatusEditable
	err = httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), InvoiceResponse{Error: &s})
		return
	}

	target, err := status.ParseStatus(body.Status)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	invoice, err := timesheet.UpdateInvoiceStatus(invoiceID, target, body.Comments)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), InvoiceResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Data: &invoice})
}
