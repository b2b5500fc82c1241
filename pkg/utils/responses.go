package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with data wrapped under key, e.g. {"reviews": [...]}
func ResponseSuccess(w http.ResponseWriter, key string, data any) {
	ResponseJSON(w, http.StatusOK, map[string]any{key: data})
}

// returns 201 Created with data wrapped under key
func ResponseCreated(w http.ResponseWriter, key string, data any) {
	ResponseJSON(w, http.StatusCreated, map[string]any{key: data})
}

// returns 204 No Content with an empty body
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// ErrorBody is the JSON shape of every failure. Status is only echoed for
// business-rule failures.
type ErrorBody struct {
	Status int    `json:"status,omitempty"`
	Msg    string `json:"msg"`
}

// returns {"msg": ...}
func ResponseMessage(w http.ResponseWriter, code int, msg string) {
	ResponseJSON(w, code, ErrorBody{Msg: msg})
}

// returns {"status": code, "msg": ...}
func ResponseStatusMessage(w http.ResponseWriter, code int, msg string) {
	ResponseJSON(w, code, ErrorBody{Status: code, Msg: msg})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseMessage(w, http.StatusInternalServerError, "Internal server error")
}
