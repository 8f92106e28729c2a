package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"deckflow/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("json encode failed", "err", err)
	}
}

type errResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// writeError maps a pipeline error onto an HTTP status using its code.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTopic, errors.ErrCodeInvalidSlideCount,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme, errors.ErrCodeInvalidSpecFile:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	body := errResponse{Error: errors.UserMessage(err), Code: string(code)}
	if status == http.StatusInternalServerError {
		// Don't leak internals; the log has the details.
		body.Error = "internal error"
	}
	writeJSON(w, status, body)
}
