package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/creditodds/creditodds-api/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string               `json:"error"`
	Kind   string               `json:"kind"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidation:   http.StatusBadRequest,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindForbidden:    http.StatusForbidden,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindConflict:     http.StatusConflict,
	domain.KindUnavailable:  http.StatusServiceUnavailable,
	domain.KindInternal:     http.StatusInternalServerError,
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.ErrorKind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, kind domain.ErrorKind, message string) {
	writeJSON(w, status, errorResponse{Error: message, Kind: kind.String()})
}

// respondError classifies err and writes the error body. Internal errors are
// logged and replaced by a fixed message.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	if kind == domain.KindInternal {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, status, kind, "internal server error")
		return
	}

	body := errorResponse{Error: err.Error(), Kind: kind.String()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Fields = make([]fieldErrorResponse, len(verr.Errors))
		for i, fe := range verr.Errors {
			body.Fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
	}
	if kind == domain.KindUnavailable {
		log.WarnContext(r.Context(), "upstream unavailable",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a bounded JSON body into v. A malformed body is a
// validation error on the field "body".
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field, "has the wrong type")
		}
		return domain.NewValidationError("body", "must be a valid JSON object")
	}
	return nil
}

// idParam parses a required positive integer query parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.NewValidationError(name, "is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	if id <= 0 {
		return 0, domain.NewValidationError(name, "must be greater than 0")
	}
	return id, nil
}

// optionalIDParam is idParam for filters: an absent parameter yields nil.
func optionalIDParam(r *http.Request, name string) (*int64, error) {
	if r.URL.Query().Get(name) == "" {
		return nil, nil
	}
	id, err := idParam(r, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalBoolParam(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &b, nil
}

// pageParams reads limit and offset. Bounds are applied by the store.
func pageParams(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			return 0, 0, domain.NewValidationError("limit", "must be a non-negative integer")
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil || offset < 0 {
			return 0, 0, domain.NewValidationError("offset", "must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
