package calendar

import (
	"fmt"

	"github.com/worklog-zero/backend/internal/types"
)

// FixedHolidays provides the fixed-date Swedish public holidays.
//
// Movable holidays (Easter, Midsummer, …) are not computed. Substitute a
// complete provider if they are needed; the calendar logic does not change.
type FixedHolidays struct{}

var fixedHolidays = map[string]string{
	"01-01": "New Year's Day",
	"01-06": "Epiphany",
	"05-01": "Labor Day",
	"06-06": "National Day of Sweden",
	"12-24": "Christmas Eve",
	"12-25": "Christmas Day",
	"12-26": "Boxing Day",
	"12-31": "New Year's Eve",
}

// Holidays returns the fixed-date holidays falling into the month.
func (FixedHolidays) Holidays(month types.Month) map[string]string {
	holidays := make(map[string]string)
	for monthDay, name := range fixedHolidays {
		date := fmt.Sprintf("%04d-%s", month.Year(), monthDay)
		if date[5:7] == fmt.Sprintf("%02d", int(month.Month())) {
			holidays[date] = name
		}
	}

	return holidays
}
