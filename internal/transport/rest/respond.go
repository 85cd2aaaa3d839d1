package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
	"github.com/heartmarshall/oneonone-backend/pkg/ctxutil"
)

// envelope is the uniform response shape: callers branch on Success instead
// of relying on HTTP status alone.
type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   *errBody `json:"error,omitempty"`
}

type errBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data}) //nolint:errcheck
}

func respondErrorBody(w http.ResponseWriter, status int, body errBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: &body}) //nolint:errcheck
}

// respondBadRequest reports a malformed payload before it reaches a service.
func respondBadRequest(w http.ResponseWriter, message string) {
	respondErrorBody(w, http.StatusBadRequest, errBody{Code: "VALIDATION", Message: message})
}

// respondError maps a domain error to the envelope code and HTTP status.
// Unexpected errors are logged with the request id and masked as INTERNAL.
func respondError(ctx context.Context, w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		body := errBody{Code: "VALIDATION", Message: err.Error()}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				body.Fields = append(body.Fields, fieldErrorPayload{Field: fe.Field, Message: fe.Message})
			}
		}
		respondErrorBody(w, http.StatusBadRequest, body)

	case errors.Is(err, domain.ErrNotFound):
		respondErrorBody(w, http.StatusNotFound, errBody{Code: "NOT_FOUND", Message: err.Error()})

	case errors.Is(err, domain.ErrAlreadyExists):
		respondErrorBody(w, http.StatusConflict, errBody{Code: "ALREADY_EXISTS", Message: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		respondErrorBody(w, http.StatusConflict, errBody{Code: "CONFLICT", Message: err.Error()})

	default:
		log.ErrorContext(ctx, "unexpected error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		respondErrorBody(w, http.StatusInternalServerError, errBody{Code: "INTERNAL", Message: "internal error"})
	}
}

// pathID parses the {id} path value as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}
