package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"campaign-autopilot/internal/core/domain"
)

var validate = validator.New()

// decode reads a JSON body into v and validates its struct tags.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w: %w", domain.ErrInvalidRequest, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation error: %w: %w", domain.ErrInvalidRequest, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", chi.URLParam(r, "id"), domain.ErrInvalidRequest)
	}
	return id, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrInvalidRequest)
	}
	return v, nil
}

// queryInt64s accepts repeated parameters (?list_id=1&list_id=2).
func queryInt64s(r *http.Request, name string) ([]int64, error) {
	raw := r.URL.Query()[name]
	out := make([]int64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", name, s, domain.ErrInvalidRequest)
		}
		out = append(out, v)
	}
	return out, nil
}

func errInvalid(msg string) error {
	return fmt.Errorf("%s: %w", msg, domain.ErrInvalidRequest)
}

type errorResponse struct {
	Error  string `json:"error"`
	Result any    `json:"result,omitempty"`
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRemoteFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error, partial any) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		msg = "internal error"
	} else if status == http.StatusBadGateway {
		h.logger.Warn(op+" upstream error", slog.Any("error", err))
	}
	h.writeJSON(w, status, errorResponse{Error: msg, Result: partial})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
