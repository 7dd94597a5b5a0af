package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx catalog response.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// errorStatus maps a domain error to its HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "ALREADY_EXISTS"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// writeError writes err as an ErrorResponse. Unexpected errors are logged
// and their message is replaced with a generic one.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, code := errorStatus(err)
	resp := ErrorResponse{Error: err.Error(), Code: code}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Errors
	}

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		resp.Error = "internal error"
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
