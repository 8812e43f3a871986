package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

// cmd/ask answers a single question from the command line, or prompts for one
// when no arguments are given.
func main() {
	_ = godotenv.Load()

	var dbPath, answeringPath string
	flag.StringVar(&dbPath, "db", envOrDefault("SCHEDULE_DB", "schedule.sqlite"), "Path to the schedule SQLite database")
	flag.StringVar(&answeringPath, "answering-config", envOrDefault("ANSWERING_CONFIG", "answering.yml"), "Path to the answering YAML config")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelWarn)

	store, err := gtfsdb.NewClient(gtfsdb.NewConfig(dbPath, appconf.Development, false))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open schedule store:", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(store, logger, "schedule_store")

	answering, err := config.LoadAnswering(answeringPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load answering config:", err)
		os.Exit(1)
	}

	question := strings.Join(flag.Args(), " ")
	if question == "" {
		fmt.Print("Question: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			question = strings.TrimSpace(scanner.Text())
		}
	}
	if question == "" {
		fmt.Fprintln(os.Stderr, "no question given")
		os.Exit(1)
	}

	answerer := answer.NewAnswerer(store, answering, logger)
	result, err := answerer.Answer(context.Background(), question)
	if err != nil {
		// the whole taxonomy is rider-facing; print it and exit cleanly
		var ambiguous *answer.AmbiguousStopError
		var notFound *answer.StopNotFoundError
		if errors.Is(err, answer.ErrMissingRoute) || errors.Is(err, answer.ErrMissingTime) ||
			errors.Is(err, answer.ErrMalformedRequest) ||
			errors.As(err, &ambiguous) || errors.As(err, &notFound) {
			fmt.Println(err.Error())
			return
		}
		fmt.Fprintln(os.Stderr, "query failed:", err)
		os.Exit(1)
	}

	fmt.Println(answer.RenderText(result))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
