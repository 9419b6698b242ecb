package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklog-zero/backend/internal/export"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/models"
)

func RegisterExportRoutes(r *gin.RouterGroup) {
	admin := identity.RequireRole(identity.RoleAdmin)

	r.OPTIONS("/timesheets/:year/:month", httputil.OptionsGet)
	r.GET("/timesheets/:year/:month", admin, ExportTimesheets)
}

// ExportTimesheets streams a month's timesheets as a workbook
//
//	@Summary		Export timesheets
//	@Description	Returns an XLSX workbook with all summaries and day records of a month
//	@Tags			Export
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			year	path		int	true	"Year"
//	@Param			month	path		int	true	"Month, 1 to 12"
//	@Router			/v1/export/timesheets/{year}/{month} [get]
func ExportTimesheets(c *gin.Context) {
	month, ok := bindMonthURI(c)
	if !ok {
		return
	}

	workbook, err := export.MonthWorkbook(models.DB, month)
	if err != nil {
		c.JSON(httpStatus(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"timesheets_%s.xlsx\"", month))

	err = workbook.Write(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
	}
}
