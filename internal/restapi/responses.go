package restapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// ResponseModel is the envelope every endpoint returns
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the server time stamped onto every response
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, data interface{}) {
	setJSONResponseType(&w)

	response := ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, status int, text string, data interface{}) {
	setJSONResponseType(&w)
	w.WriteHeader(status)

	response := ResponseModel{
		Code:        status,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.App.Logger.Error("failed to encode error response", "error", err)
	}
}
