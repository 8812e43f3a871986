package restapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
)

// journeysHandler answers parameterized one-transfer searches:
// GET /api/v1/journeys?from=0473&to=1492&date=2026-01-31&time=14:50:00&limit=3
func (api *RestAPI) journeysHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		api.sendError(w, r, http.StatusBadRequest, "missing required parameters: from, to", nil)
		return
	}

	date, ok := api.dateParam(w, r)
	if !ok {
		return
	}

	floor := r.URL.Query().Get("time")
	if floor == "" {
		floor = "00:00:00"
	} else if _, err := time.Parse("15:04:05", floor); err != nil {
		api.sendError(w, r, http.StatusBadRequest, "invalid time format, use HH:MM:SS", nil)
		return
	}

	limit := answer.DefaultJourneyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			api.sendError(w, r, http.StatusBadRequest, "invalid limit, use a non-negative integer", nil)
			return
		}
		limit = parsed
	}

	planner := answer.NewJourneyPlanner(api.App.Store, api.App.Logger)
	result, err := planner.FastestOneTransfer(r.Context(), date, floor, from, to, limit)
	if err != nil {
		api.answerErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, result)
}
