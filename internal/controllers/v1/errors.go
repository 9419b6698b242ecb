package v1

import (
	"errors"
	"net/http"

	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/timesheet"
)

type httpError struct {
	Error string `json:"error" example:"there is no monthly summary matching your query"`
}

// httpStatus returns the appropriate HTTP status for an error raised by
// the models or the timesheet engine.
func httpStatus(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, timesheet.ErrNotOwner) {
		return http.StatusForbidden
	}

	if errors.Is(err, timesheet.ErrConflict) ||
		errors.Is(err, timesheet.ErrInvoiceExists) ||
		errors.Is(err, status.ErrWrongSourceState) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var errMonthParameter = errors.New("the year and month path parameters must form a valid month")
