// Package export renders monthly timesheet data as XLSX workbooks for
// the payroll side.
package export

import (
	"fmt"
	"time"

	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/types"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// MonthWorkbook builds a workbook for one month with an overview sheet of
// all summaries and a detail sheet of every owned day record.
func MonthWorkbook(db *gorm.DB, month types.Month) (*excelize.File, error) {
	var summaries []models.MonthlySummary
	err := db.
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Records.HolidayCategory").
		Where("month = ?", month).
		Order("user_name ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	err = writeOverview(f, month, summaries)
	if err != nil {
		return nil, err
	}

	err = writeRecords(f, summaries)
	if err != nil {
		return nil, err
	}

	// Drop the default sheet so the overview opens first
	err = f.DeleteSheet("Sheet1")
	if err != nil {
		return nil, err
	}

	return f, nil
}

func writeOverview(f *excelize.File, month types.Month, summaries []models.MonthlySummary) error {
	const sheet = "Overview"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	header := []interface{}{
		"User", "Month", "Status", "Total hours", "Regular hours",
		"Holiday hours", "Support hours", "Reported total", "Submitted", "Approved", "Paid",
	}
	err = f.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return err
	}

	for i, summary := range summaries {
		reported := ""
		if summary.ReportedTotalHours != nil {
			reported = fmt.Sprintf("%.2f", *summary.ReportedTotalHours)
		}

		row := []interface{}{
			summary.UserName,
			month.String(),
			string(summary.Status),
			summary.TotalHours,
			summary.RegularHours,
			summary.HolidayHours,
			summary.SupportHours,
			reported,
			formatDate(summary.SubmissionDate),
			formatDate(summary.ApprovalDate),
			formatDate(summary.PaymentDate),
		}

		err = f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeRecords(f *excelize.File, summaries []models.MonthlySummary) error {
	const sheet = "Records"

	_, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}

	header := []interface{}{"User", "Date", "Hours worked", "Support hours", "Holiday category", "Note", "Status"}
	err = f.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return err
	}

	row := 2
	for _, summary := range summaries {
		for _, record := range summary.Records {
			category := ""
			if record.HolidayCategory != nil {
				category = record.HolidayCategory.Name
			}

			values := []interface{}{
				record.UserName,
				record.Date.Format("2006-01-02"),
				record.HoursWorked,
				record.SupportHours,
				category,
				record.Note,
				record.Status,
			}

			err = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
			if err != nil {
				return err
			}

			row++
		}
	}

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("2006-01-02")
}
