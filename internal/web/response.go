package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/internal/middleware"
	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
)

var errInvalidPayload = errors.New("invalid request payload")

// APIHandler is an http handler that reports failures by returning them.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeSuccessJSON(w http.ResponseWriter, status int, message string, data any) error {
	return writeJSON(w, status, successResponse{Success: true, Message: message, Data: data})
}

func parseJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errInvalidPayload
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errInvalidPayload
	}
	return nil
}

// statusCode maps domain errors onto HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, model.ErrCustomerNotFound), errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidID),
		errors.Is(err, errInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// makeHandler centralizes error reporting for APIHandlers. Internal errors
// are logged and their text is withheld from the caller.
func makeHandler(log logger.ZapLogger, h APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		code := statusCode(err)
		requestID := middleware.RequestID(r.Context())
		msg := err.Error()
		if code == http.StatusInternalServerError {
			log.Error("HTTP request failed",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			msg = "something went wrong"
		}

		_ = writeJSON(w, code, errorResponse{Message: msg, RequestID: requestID})
	}
}
