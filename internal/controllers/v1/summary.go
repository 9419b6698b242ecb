package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/timesheet"
	"github.com/worklog-zero/backend/internal/types"
	"gorm.io/gorm"
)

func RegisterSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetSummaries)
	}
	{
		r.OPTIONS("/pending", httputil.OptionsGet)
		r.GET("/pending", identity.RequireRole(identity.RolePayroll), GetPendingSummaries)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGet)
		r.GET("/:id", GetSummary)
	}
	{
		r.POST("/:id/submit", func(c *gin.Context) { transitionSummary(c, status.Submit) })
		r.POST("/:id/reopen", func(c *gin.Context) { transitionSummary(c, status.Reopen) })

		payroll := identity.RequireRole(identity.RolePayroll)
		r.POST("/:id/approve", payroll, func(c *gin.Context) { transitionSummary(c, status.Approve) })
		r.POST("/:id/reject", payroll, func(c *gin.Context) { transitionSummary(c, status.Reject) })
		r.POST("/:id/pay", payroll, func(c *gin.Context) { transitionSummary(c, status.Pay) })
	}
}

// GetSummaries returns monthly summaries
//
//	@Summary		List summaries
//	@Description	Returns the calling user's monthly summaries. Payroll and admin callers can filter by user and month to see other users' summaries.
//	@Tags			Summaries
//	@Produce		json
//	@Success		200		{object}	SummaryListResponse
//	@Failure		400		{object}	SummaryListResponse
//	@Failure		500		{object}	SummaryListResponse
//	@Param			user	query		string	false	"Filter by user name, payroll only"
//	@Param			year	query		int		false	"Filter by year"
//	@Param			month	query		int		false	"Filter by month"
//	@Router			/v1/summaries [get]
func GetSummaries(c *gin.Context) {
	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, SummaryListResponse{Error: &s})
		return
	}

	var filter SummaryQueryFilter
	err = c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryListResponse{Error: &s})
		return
	}

	q := models.DB.
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Order("date(month) DESC, user_name ASC")

	// Only the payroll side sees other users' months
	if id.HasRole(identity.RolePayroll) {
		if filter.User != "" {
			q = q.Where("user_name = ?", filter.User)
		}
	} else {
		q = q.Where("user_name = ?", id.Name)
	}

	if filter.Year != 0 && filter.Month != 0 {
		month := types.NewMonth(filter.Year, time.Month(filter.Month))
		q = q.Where("month = ?", month)
	}

	var summaries []models.MonthlySummary
	err = q.Find(&summaries).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryListResponse{Data: summaries})
}

// GetPendingSummaries returns the approval queue
//
//	@Summary		Pending summaries
//	@Description	Returns all submitted summaries waiting for an approval decision
//	@Tags			Summaries
//	@Produce		json
//	@Success		200	{object}	SummaryListResponse
//	@Failure		500	{object}	SummaryListResponse
//	@Router			/v1/summaries/pending [get]
func GetPendingSummaries(c *gin.Context) {
	var summaries []models.MonthlySummary
	err := models.DB.
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Where("status = ?", status.Submitted).
		Order("submission_date ASC").
		Find(&summaries).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryListResponse{Data: summaries})
}

// GetSummary returns a single summary
//
//	@Summary		Get summary
//	@Description	Returns one monthly summary with its records. Only the owner and the payroll side can read it.
//	@Tags			Summaries
//	@Produce		json
//	@Success		200	{object}	SummaryResponse
//	@Failure		400	{object}	SummaryResponse
//	@Failure		403	{object}	SummaryResponse
//	@Failure		404	{object}	SummaryResponse
//	@Param			id	path		string	true	"ID of the summary"
//	@Router			/v1/summaries/{id} [get]
func GetSummary(c *gin.Context) {
	summaryID, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, SummaryResponse{Error: &s})
		return
	}

	summary, err := timesheet.WithRecords(models.MonthlySummary{DefaultModel: models.DefaultModel{ID: summaryID}})
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryResponse{Error: &s})
		return
	}

	if summary.UserName != id.Name && !id.HasRole(identity.RolePayroll) {
		s := timesheet.ErrNotOwner.Error()
		c.JSON(http.StatusForbidden, SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// transitionSummary applies one lifecycle action to the summary in the
// path. The request body is optional and only carries comments.
func transitionSummary(c *gin.Context, action status.Action) {
	summaryID, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, SummaryResponse{Error: &s})
		return
	}

	var body ActionEditable
	if c.Request.ContentLength > 0 {
		err = httputil.BindData(c, &body)
		if err != nil {
			s := err.Error()
			c.JSON(httpStatus(err), SummaryResponse{Error: &s})
			return
		}
	}

	summary, err := timesheet.TransitionSummary(summaryID, action, timesheet.Actor{
		Name:  id.Name,
		Admin: id.IsAdmin(),
	}, body.Comments)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
