package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/app"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/restapi"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var port int
	var envFlag, dbPath, answeringPath string

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", envOrDefault("APP_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&dbPath, "db", envOrDefault("SCHEDULE_DB", "schedule.sqlite"), "Path to the schedule SQLite database")
	flag.StringVar(&answeringPath, "answering-config", envOrDefault("ANSWERING_CONFIG", "answering.yml"), "Path to the answering YAML config")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	env := appconf.EnvFlagToEnvironment(envFlag)

	store, err := gtfsdb.NewClient(gtfsdb.NewConfig(dbPath, env, false))
	if err != nil {
		logger.Error("failed to open schedule store", "error", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(store, logger, "schedule_store")

	answering, err := config.LoadAnswering(answeringPath)
	if err != nil {
		logger.Error("failed to load answering config", "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:    appconf.Config{Port: port, Env: env},
		Answering: answering,
		Logger:    logger,
		Store:     store,
		Answerer:  answer.NewAnswerer(store, answering, logger),
	}

	api := &restapi.RestAPI{App: application}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
