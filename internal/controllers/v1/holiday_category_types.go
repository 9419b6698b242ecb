package v1

import "github.com/worklog-zero/backend/internal/models"

type HolidayCategoryEditable struct {
	Name              string `json:"name" binding:"required" example:"Semester"`
	Description       string `json:"description" example:"Paid vacation days"`
	GovernmentHoliday bool   `json:"governmentHoliday" example:"false"`
}

// model returns the database resource for the API representation of the editable fields
func (editable HolidayCategoryEditable) model() models.HolidayCategory {
	return models.HolidayCategory{
		Name:              editable.Name,
		Description:       editable.Description,
		GovernmentHoliday: editable.GovernmentHoliday,
	}
}

type HolidayCategoryResponse struct {
	Data  *models.HolidayCategory `json:"data"`
	Error *string                 `json:"error" example:"there is no holiday category matching your query"`
}

type HolidayCategoryListResponse struct {
	Data  []models.HolidayCategory `json:"data"`
	Error *string                  `json:"error" example:"there is no holiday category matching your query"`
}
