package models

import (
	"strings"

	"gorm.io/gorm"
)

// HolidayCategory is reference data describing why a day was not a regular
// working day, e.g. vacation or sick leave. Daily records reference it,
// never own it.
type HolidayCategory struct {
	DefaultModel
	Name              string `json:"name" gorm:"uniqueIndex" example:"Semester"`
	Description       string `json:"description" example:"Vacation"`
	GovernmentHoliday bool   `json:"governmentHoliday" example:"true"` // Whether this is a government holiday type rather than a company one
}

func (h *HolidayCategory) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Description = strings.TrimSpace(h.Description)

	return nil
}

// SeedHolidayCategories creates the default categories once.
func SeedHolidayCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&HolidayCategory{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := []HolidayCategory{
		{Name: "Sjukledighet", Description: "Sick leave", GovernmentHoliday: true},
		{Name: "Föräldraledighet", Description: "Parental leave", GovernmentHoliday: true},
		{Name: "Semester", Description: "Vacation", GovernmentHoliday: true},
		{Name: "VAB (Vård av barn)", Description: "Care of child", GovernmentHoliday: true},
		{Name: "Tjänstledighet", Description: "Leave of absence", GovernmentHoliday: true},
		{Name: "Studieledighet", Description: "Study leave", GovernmentHoliday: true},
		{Name: "Work from home", Description: "Remote work day", GovernmentHoliday: false},
		{Name: "Conference", Description: "Attending a conference", GovernmentHoliday: false},
		{Name: "Training", Description: "Training/education day", GovernmentHoliday: false},
	}

	return db.Create(&categories).Error
}
