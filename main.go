package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/worklog-zero/backend/internal/calendar"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/mail"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/router"
	"github.com/worklog-zero/backend/internal/storage"
	"github.com/worklog-zero/backend/internal/timesheet"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	secret, ok := os.LookupEnv("TOKEN_SECRET")
	if !ok || secret == "" {
		log.Fatal().Msg("TOKEN_SECRET must be set")
	}
	identity.SetSecret(secret)

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = filepath.Join(dataDir, "gorm.db")
	}
	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.SeedHolidayCategories(models.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	uploadDir, ok := os.LookupEnv("UPLOAD_DIR")
	if !ok {
		uploadDir = filepath.Join(dataDir, "uploads")
	}
	store, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	timesheet.Configure(store, calendar.FixedHolidays{}, mail.LogNotifier{})

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
