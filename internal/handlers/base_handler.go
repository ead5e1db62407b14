package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response with the shared
// {error, message} body shape
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, code, message string) {
	h.RespondJSON(w, status, map[string]string{"error": code, "message": message})
}

// HandleError maps a service error to an HTTP response. Application
// errors keep their status and client-facing text; anything else is
// logged and reported as a generic internal server error.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := apperrors.AsError(err); ok {
		h.RespondJSON(w, appErr.Status, appErr)
		return
	}

	h.Logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	h.RespondError(w, http.StatusInternalServerError,
		"Internal server error", "Something went wrong on the server")
}

// PathID parses a positive integer ID from the named URL parameter
func PathID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}
