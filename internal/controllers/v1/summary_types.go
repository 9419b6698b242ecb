package v1

import (
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/timesheet"
)

// EntriesEditable is a full month submission: the authoritative set of day
// entries, optionally submitting the month for approval in the same request.
type EntriesEditable struct {
	Entries []timesheet.Entry `json:"entries"`
	Submit  bool              `json:"submit" example:"true"`
}

// ActionEditable carries the optional comments of a lifecycle action.
type ActionEditable struct {
	Comments string `json:"comments" example:"Hours do not match the client report"`
}

type SummaryResponse struct {
	Data  *models.MonthlySummary `json:"data"`
	Error *string                `json:"error" example:"there is no monthly summary matching your query"`
}

type SummaryListResponse struct {
	Data  []models.MonthlySummary `json:"data"`
	Error *string                 `json:"error" example:"there is no monthly summary matching your query"`
}

// SummaryQueryFilter filters the summary list. User and month filters are
// only honored for payroll and admin callers.
type SummaryQueryFilter struct {
	User  string `form:"user" example:"astrid"`
	Year  int    `form:"year" example:"2024"`
	Month int    `form:"month" example:"5"`
}
