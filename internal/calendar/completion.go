package calendar

// Completion describes how much of a month's workdays have a record.
type Completion struct {
	TotalWorkdays        int     `json:"totalWorkdays"`
	FilledWorkdays       int     `json:"filledWorkdays"`
	CompletionPercentage float64 `json:"completionPercentage"`
	IsComplete           bool    `json:"isComplete"`
}

// Complete computes the completion of a month: the share of workdays for
// which a record exists. filled is the set of ISO dates that have a record.
// Dates outside the month's workdays do not count.
func Complete(cal Calendar, filled map[string]bool) Completion {
	var total, done int
	for _, day := range cal.Days {
		if !day.IsWorkday {
			continue
		}

		total++
		if filled[day.Date.Format("2006-01-02")] {
			done++
		}
	}

	completion := Completion{
		TotalWorkdays:  total,
		FilledWorkdays: done,
		IsComplete:     done == total,
	}

	// A month without workdays is 0% complete, not NaN
	if total > 0 {
		completion.CompletionPercentage = 100 * float64(done) / float64(total)
	}

	return completion
}
