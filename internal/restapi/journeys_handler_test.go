package restapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
)

func TestJourneysHandler(t *testing.T) {
	api := createTestApi(t)

	status, env := serveRequest(t, api,
		"/api/v1/journeys?from=0473&to=1492&date=2026-01-31&time=14:50:00")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", env.Text)
	assert.Equal(t, 2, env.Version)

	var result answer.ItinerariesResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "Main Street Station", result.FromName)
	assert.Equal(t, "University Commons", result.ToName)
	require.Len(t, result.Options, 3)
	assert.Equal(t, "14:55:00", result.Options[0].FirstDepart)
	assert.Equal(t, "15:50:00", result.Options[0].FinalArrive)
	assert.Equal(t, "Transfer Center", result.Options[0].TransferStopName)
}

func TestJourneysHandlerLimit(t *testing.T) {
	api := createTestApi(t)

	status, env := serveRequest(t, api,
		"/api/v1/journeys?from=0473&to=1492&date=2026-01-31&time=14:50:00&limit=1")
	require.Equal(t, http.StatusOK, status)

	var result answer.ItinerariesResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Len(t, result.Options, 1)
}

func TestJourneysHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	status, _ := serveRequest(t, api, "/api/v1/journeys?from=0473")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = serveRequest(t, api, "/api/v1/journeys?from=0473&to=1492&date=01/31/2026")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = serveRequest(t, api, "/api/v1/journeys?from=0473&to=1492&time=2pm")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = serveRequest(t, api, "/api/v1/journeys?from=0473&to=1492&limit=-1")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestJourneysHandlerUnknownStop(t *testing.T) {
	api := createTestApi(t)

	status, env := serveRequest(t, api, "/api/v1/journeys?from=9999&to=1492&date=2026-01-31")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, env.Text, "9999")
}
