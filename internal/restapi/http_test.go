package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/app"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/fixture"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

// createTestApi builds an API over the fixture network with the clock pinned
// to Friday 2026-01-30.
func createTestApi(t *testing.T, aliases ...config.AliasEntry) *RestAPI {
	t.Helper()

	store := fixture.NewSeededStore(t)
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	answering := config.Answering{Aliases: aliases}

	application := &app.Application{
		Config:    appconf.Config{Port: 4000, Env: appconf.Test},
		Answering: answering,
		Logger:    logger,
		Store:     store,
		Answerer: answer.NewAnswerer(store, answering, logger,
			answer.WithClock(func() time.Time {
				return time.Date(2026, time.January, 30, 10, 0, 0, 0, time.UTC)
			})),
	}
	return &RestAPI{App: application}
}

// envelope mirrors ResponseModel with the payload left raw so each test can
// decode it into the expected shape.
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Text    string          `json:"text"`
	Version int             `json:"version"`
}

func serveRequest(t *testing.T, api *RestAPI, target string) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	api.Routes().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}
