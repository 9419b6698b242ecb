package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklog-zero/backend/internal/calendar"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/timesheet"
)

func RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/workdays", httputil.OptionsGet)
	r.GET("/workdays", GetWorkdays)

	r.OPTIONS("/completion", httputil.OptionsGet)
	r.GET("/completion", GetCompletion)
}

type CalendarResponse struct {
	Data  *CalendarData `json:"data"`
	Error *string       `json:"error" example:"the year and month query parameters must form a valid month"`
}

type CalendarData struct {
	Month         string         `json:"month" example:"2024-05"`
	TotalDays     int            `json:"totalDays" example:"31"`
	Workdays      int            `json:"workdays" example:"22"`
	ExpectedHours float64        `json:"expectedHours" example:"176"`
	Days          []calendar.Day `json:"days"`
}

type CompletionResponse struct {
	Data  *CompletionData `json:"data"`
	Error *string         `json:"error" example:"the year and month query parameters must form a valid month"`
}

type CompletionData struct {
	Month                string  `json:"month" example:"2024-05"`
	TotalWorkdays        int     `json:"totalWorkdays" example:"22"`
	FilledWorkdays       int     `json:"filledWorkdays" example:"20"`
	CompletionPercentage float64 `json:"completionPercentage" example:"90.9"`
	IsComplete           bool    `json:"isComplete" example:"false"`
	MissingDates         []string `json:"missingDates"`
}

// GetWorkdays returns the workday calendar of a month
//
//	@Summary		Workday calendar
//	@Description	Returns all days of a month with their workday, weekend and holiday classification
//	@Tags			Calendar
//	@Produce		json
//	@Success		200		{object}	CalendarResponse
//	@Failure		400		{object}	CalendarResponse
//	@Param			year	query		int	true	"Year"
//	@Param			month	query		int	true	"Month, 1 to 12"
//	@Router			/v1/calendar/workdays [get]
func GetWorkdays(c *gin.Context) {
	var query QueryYearMonth
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := errMonthParameter.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{Error: &s})
		return
	}

	month := query.month()
	cal := calendar.ForMonth(month, timesheet.HolidayCalendar())

	c.JSON(http.StatusOK, CalendarResponse{Data: &CalendarData{
		Month:         month.String(),
		TotalDays:     cal.TotalDays(),
		Workdays:      cal.Workdays(),
		ExpectedHours: cal.ExpectedHours(calendar.StandardDailyHours),
		Days:          cal.Days,
	}})
}

// GetCompletion returns the month completion of a user
//
//	@Summary		Month completion
//	@Description	Returns how many workdays of the month the user has filled in. Payroll and admin callers can check other users.
//	@Tags			Calendar
//	@Produce		json
//	@Success		200		{object}	CompletionResponse
//	@Failure		400		{object}	CompletionResponse
//	@Failure		403		{object}	CompletionResponse
//	@Failure		500		{object}	CompletionResponse
//	@Param			year	query		int		true	"Year"
//	@Param			month	query		int		true	"Month, 1 to 12"
//	@Param			user	query		string	false	"User to check, payroll only"
//	@Router			/v1/calendar/completion [get]
func GetCompletion(c *gin.Context) {
	var query QueryYearMonth
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := errMonthParameter.Error()
		c.JSON(http.StatusBadRequest, CompletionResponse{Error: &s})
		return
	}

	id, err := identity.FromContext(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusUnauthorized, CompletionResponse{Error: &s})
		return
	}

	user := id.Name
	if queried := c.Query("user"); queried != "" && queried != id.Name {
		if !id.HasRole(identity.RolePayroll) {
			s := timesheet.ErrNotOwner.Error()
			c.JSON(http.StatusForbidden, CompletionResponse{Error: &s})
			return
		}

		user = queried
	}

	month := query.month()

	var records []models.DailyRecord
	err = models.DB.
		Where("user_name = ? AND date >= ? AND date < ?", user, month.First(), month.First().AddDate(0, 1, 0)).
		Find(&records).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), CompletionResponse{Error: &s})
		return
	}

	// Every record date counts as filled, zero-hour days included
	filled := make(map[string]bool, len(records))
	for _, record := range records {
		filled[record.Date.Format("2006-01-02")] = true
	}

	cal := calendar.ForMonth(month, timesheet.HolidayCalendar())
	completion := calendar.Complete(cal, filled)

	missing := make([]string, 0)
	for _, day := range cal.Days {
		if day.IsWorkday && !filled[day.Date.Format("2006-01-02")] {
			missing = append(missing, day.Date.Format("2006-01-02"))
		}
	}

	c.JSON(http.StatusOK, CompletionResponse{Data: &CompletionData{
		Month:                month.String(),
		TotalWorkdays:        completion.TotalWorkdays,
		FilledWorkdays:       completion.FilledWorkdays,
		CompletionPercentage: completion.CompletionPercentage,
		IsComplete:           completion.IsComplete,
		MissingDates:         missing,
	}})
}
