package app

import (
	"log/slog"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    appconf.Config
	Answering config.Answering
	Logger    *slog.Logger
	Store     *gtfsdb.Client
	Answerer  *answer.Answerer
}
