package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrRecordDateNotUnique   = errors.New("a daily record already exists for this user and date")
	ErrSummaryMonthNotUnique = errors.New("a monthly summary already exists for this user and month")
	ErrCategoryNameNotUnique = errors.New("the holiday category name is already in use")

	ErrHoursNegative   = errors.New("hours must not be negative")
	ErrUserNameMissing = errors.New("the user name must be set")
)
