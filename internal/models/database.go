package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the sqlite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("worklog_zero:after_query", queryCallback)
	if err != nil {
		return err
	}

	for name, callback := range map[string]func(*gorm.DB){
		"worklog_zero:after_create": createUpdateCallback,
		"worklog_zero:general":      generalCallback,
	} {
		err = db.Callback().Create().After("*").Register(name, callback)
		if err != nil {
			return err
		}

		err = db.Callback().Update().After("*").Register(name+"_update", callback)
		if err != nil {
			return err
		}
	}

	err = db.Callback().Query().After("*").Register("worklog_zero:general_query", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("worklog_zero:general_delete", generalCallback)
	if err != nil {
		return err
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// One daily record per user and date
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: daily_records.user_name, daily_records.date") {
		db.Error = ErrRecordDateNotUnique
	}

	// One summary per user and month
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: monthly_summaries.user_name, monthly_summaries.month") {
		db.Error = ErrSummaryMonthNotUnique
	}

	// Holiday category names are unique
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: holiday_categories.name") {
		db.Error = ErrCategoryNameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message so that
// server admins can debug.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(HolidayCategory{}, MonthlySummary{}, DailyRecord{}, SubcontractorInvoice{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
