package restapi

import (
	"errors"
	"net/http"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

// answerErrorResponse maps the answering error taxonomy onto HTTP statuses.
// Every taxonomy error is a caller problem, never a server fault; anything
// outside the taxonomy is a store failure and becomes a 500.
func (api *RestAPI) answerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var ambiguous *answer.AmbiguousStopError
	var notFound *answer.StopNotFoundError

	switch {
	case errors.Is(err, answer.ErrMissingRoute),
		errors.Is(err, answer.ErrMissingTime),
		errors.Is(err, answer.ErrMalformedRequest):
		api.sendError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &ambiguous):
		data := struct {
			Role       string   `json:"role"`
			Phrase     string   `json:"phrase"`
			Candidates []string `json:"candidates"`
		}{
			Role:       ambiguous.Role,
			Phrase:     ambiguous.Phrase,
			Candidates: ambiguous.Candidates,
		}
		api.sendError(w, r, http.StatusUnprocessableEntity, err.Error(), data)
	case errors.As(err, &notFound):
		api.sendError(w, r, http.StatusNotFound, err.Error(), nil)
	default:
		api.serverErrorResponse(w, r, err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.App.Logger, "internal server error", err)
	api.sendError(w, r, http.StatusInternalServerError, "internal server error", nil)
}
