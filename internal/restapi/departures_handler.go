package restapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
)

// departuresHandler answers parameterized departure queries:
// GET /api/v1/departures/{first|last|next}?route=5&stop=0473&date=2026-01-31&time=14:50:00
func (api *RestAPI) departuresHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	bound := params.ByName("bound")

	route := r.URL.Query().Get("route")
	stopID := r.URL.Query().Get("stop")
	if route == "" || stopID == "" {
		api.sendError(w, r, http.StatusBadRequest, "missing required parameters: route, stop", nil)
		return
	}

	date, ok := api.dateParam(w, r)
	if !ok {
		return
	}

	stop, err := api.App.Store.GetStopByPaddedID(r.Context(), stopID)
	if errors.Is(err, gtfsdb.ErrNotFound) {
		api.answerErrorResponse(w, r, &answer.StopNotFoundError{Role: "stop", Phrase: stopID})
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	candidate := gtfsdb.StopCandidate{PaddedID: stop.PaddedID, Name: stop.Name}

	queries := answer.NewDepartureQueries(api.App.Store)

	switch bound {
	case "first", "last":
		kind := answer.FirstDeparture
		if bound == "last" {
			kind = answer.LastDeparture
		}
		result, err := queries.Boundary(r.Context(), kind, route, candidate, date)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		api.sendResponse(w, r, result)
	case "next":
		floor := r.URL.Query().Get("time")
		if floor == "" {
			api.sendError(w, r, http.StatusBadRequest, "missing required parameter: time", nil)
			return
		}
		if _, err := time.Parse("15:04:05", floor); err != nil {
			api.sendError(w, r, http.StatusBadRequest, "invalid time format, use HH:MM:SS", nil)
			return
		}
		result, err := queries.NextPerDirection(r.Context(), route, candidate, date, floor)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		api.sendResponse(w, r, result)
	default:
		api.sendError(w, r, http.StatusNotFound, "unknown departure bound, use first, last or next", nil)
	}
}

// dateParam reads the optional date query parameter, defaulting to today.
// Reports false after writing an error response when the format is invalid.
func (api *RestAPI) dateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		api.sendError(w, r, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD", nil)
		return "", false
	}
	return date, true
}
