package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Routes wires the public endpoints. Everything is read-only GET; the store
// is never written during answering.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/v1/question", api.questionHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/departures/:bound", api.departuresHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/journeys", api.journeysHandler)
	return api.requestLogging(router)
}
