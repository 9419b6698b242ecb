package timesheet

import "errors"

var (
	// ErrNotOwner is returned when a user acts on another user's resource.
	ErrNotOwner = errors.New("you do not have permission to modify this resource")

	// ErrConflict is returned when a concurrent submission for the same
	// month interfered. The request can be retried as-is.
	ErrConflict = errors.New("the month was modified concurrently, please retry")

	// ErrInvalidEntry is returned when a submitted day entry cannot be
	// used. The wrapping error names the offending field.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrFileEmpty is returned for uploads without content.
	ErrFileEmpty = errors.New("the uploaded file is empty")

	// ErrFileType is returned for timesheet documents that are not PDFs.
	ErrFileType = errors.New("invalid file type, only PDF is allowed")

	// ErrInvoiceExists is returned when an invoice for the month was
	// already submitted.
	ErrInvoiceExists = errors.New("an invoice for this month has already been submitted")
)
