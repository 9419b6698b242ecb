package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/timesheet"
)

func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:year/:month/entries", httputil.OptionsPost)
		r.POST("/:year/:month/entries", SubmitEntries)
	}
	{
		r.OPTIONS("/:year/:month/document", httputil.OptionsPost)
		r.POST("/:year/:month/document", SubmitDocument)
	}
}

// SubmitEntries reconciles a month of day entries
//
//	@Summary		Submit day entries
//	@Description	Replaces the calling user's month with the submitted entry set: matching days are updated, new days created and days missing from the batch detached. With submit set, the month is handed in for approval.
//	@Tags			Months
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	SummaryResponse
//	@Failure		400		{object}	SummaryResponse
//	@Failure		404		{object}	SummaryResponse
//	@Failure		409		{object}	SummaryResponse
//	@Param			year	path		int				true	"Year"
//	@Param			month	path		int				true	"Month, 1 to 12"
//	@Param			body	body		EntriesEditable	true	"Entries"
//	@Router			/v1/months/{year}/{month}/entries [post]
func SubmitEntries(c *gin.Context) {
	month, ok := bindMonthURI(c)
	if !ok {
		return
	}

	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, SummaryResponse{Error: &s})
		return
	}

	var body EntriesEditable
	err = httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryResponse{Error: &s})
		return
	}

	summary, err := timesheet.Reconcile(id.Name, month, body.Entries, body.Submit)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// SubmitDocument accepts a document-based month report
//
//	@Summary		Upload timesheet document
//	@Description	Accepts a PDF timesheet whose reported total must match the expected hours of the month. The itemized records of the month are collapsed to a single placeholder.
//	@Tags			Months
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200				{object}	SummaryResponse
//	@Failure		400				{object}	SummaryResponse
//	@Failure		409				{object}	SummaryResponse
//	@Param			year				path		int		true	"Year"
//	@Param			month				path		int		true	"Month, 1 to 12"
//	@Param			file				formData	file	true	"PDF timesheet"
//	@Param			totalHoursReported	formData	number	true	"Total hours the document reports"
//	@Router			/v1/months/{year}/{month}/document [post]
func SubmitDocument(c *gin.Context) {
	month, ok := bindMonthURI(c)
	if !ok {
		return
	}

	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, SummaryResponse{Error: &s})
		return
	}

	reported, err := strconv.ParseFloat(c.PostForm("totalHoursReported"), 64)
	if err != nil {
		s := "the totalHoursReported form field must be a number"
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		s := httputil.ErrNoFilePost.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	file, err := header.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	summary, err := timesheet.AcceptDocumentReport(id.Name, month, reported, timesheet.Document{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
