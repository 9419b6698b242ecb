// Package calendar computes workday calendars and month completion.
//
// Everything in this package is a pure function of its inputs so that the
// same calendar can be reused across users and requests.
package calendar

import (
	"time"

	"github.com/worklog-zero/backend/internal/types"
)

// StandardDailyHours is the number of working hours a full workday represents.
const StandardDailyHours = 8.0

// A HolidayProvider reports the public holidays of a month as a map from
// ISO dates (YYYY-MM-DD) to the holiday name.
type HolidayProvider interface {
	Holidays(month types.Month) map[string]string
}

// Day is a single calendar day of a month.
type Day struct {
	Date        time.Time `json:"date"`
	Weekday     string    `json:"dayOfWeek"`
	IsWorkday   bool      `json:"isWorkday"`
	IsWeekend   bool      `json:"isWeekend"`
	IsHoliday   bool      `json:"isHoliday"`
	HolidayName string    `json:"holidayName,omitempty"`
}

// Calendar is the ordered list of all days of one month.
type Calendar struct {
	Month types.Month
	Days  []Day
}

// ForMonth builds the calendar for a month. A day is a workday when it is
// neither a weekend day nor a public holiday reported by the provider.
func ForMonth(month types.Month, holidays HolidayProvider) Calendar {
	public := holidays.Holidays(month)

	days := make([]Day, 0, month.Days())
	for date := month.First(); !date.After(month.Last()); date = date.AddDate(0, 0, 1) {
		weekday := date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday
		name, isHoliday := public[date.Format("2006-01-02")]

		days = append(days, Day{
			Date:        date,
			Weekday:     weekday.String(),
			IsWorkday:   !isWeekend && !isHoliday,
			IsWeekend:   isWeekend,
			IsHoliday:   isHoliday,
			HolidayName: name,
		})
	}

	return Calendar{Month: month, Days: days}
}

// TotalDays returns the number of calendar days in the month.
func (c Calendar) TotalDays() int {
	return len(c.Days)
}

// Workdays returns the number of workdays in the month.
func (c Calendar) Workdays() int {
	var count int
	for _, day := range c.Days {
		if day.IsWorkday {
			count++
		}
	}

	return count
}

// WorkdayDates returns the set of workday dates, keyed by ISO date.
func (c Calendar) WorkdayDates() map[string]bool {
	dates := make(map[string]bool)
	for _, day := range c.Days {
		if day.IsWorkday {
			dates[day.Date.Format("2006-01-02")] = true
		}
	}

	return dates
}

// ExpectedHours returns the working hours a fully worked month amounts to.
func (c Calendar) ExpectedHours(dailyHours float64) float64 {
	return float64(c.Workdays()) * dailyHours
}
