package restapi

import (
	"net/http"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
)

// questionHandler is the natural-language entry point: GET /api/v1/question?q=...
func (api *RestAPI) questionHandler(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("q")
	if question == "" {
		api.sendError(w, r, http.StatusBadRequest, "missing required parameter: q", nil)
		return
	}

	result, err := api.App.Answerer.Answer(r.Context(), question)
	if err != nil {
		api.answerErrorResponse(w, r, err)
		return
	}

	data := struct {
		Kind  string        `json:"kind"`
		Entry answer.Result `json:"entry"`
	}{
		Kind:  resultKind(result),
		Entry: result,
	}
	api.sendResponse(w, r, data)
}

// resultKind tags the JSON payload so clients can dispatch without probing
// for field presence.
func resultKind(result answer.Result) string {
	switch r := result.(type) {
	case answer.ItinerariesResult:
		return answer.FastestTransfer.String()
	case answer.DepartureBoundResult:
		return r.Kind.String()
	case answer.NextDeparturesResult:
		return answer.NextDeparture.String()
	default:
		return answer.Unrecognized.String()
	}
}
