// ripple/utils/apierr/apierr.go
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"ripple/ripple/utils/logging"

	"go.uber.org/zap"
)

// Error is the one domain error type every handler funnels through.
// Status is the HTTP status the formatter writes.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func Upstream(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Write formats err as {"success":false,"error":...}. Anything that is not
// an *Error becomes a generic 500 body; the real cause goes to the error log.
func Write(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "There was a server side error!"

	var apiErr *Error
	if errors.As(err, &apiErr) {
		status = apiErr.Status
		message = apiErr.Message
	}
	if status >= http.StatusInternalServerError && logging.ErrorLogger != nil {
		logging.ErrorLogger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Success: false, Error: message})
}
