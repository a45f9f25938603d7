package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/repository"
	"github.com/cirelay/cirelay/pkg/utils/errutil"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the domain error taxonomy to HTTP statuses. Bodies carry
// only a generic message; upstream detail, stack traces and token material
// stay in the server log.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := errorStatus(err)

	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "request failed", err)
	} else {
		logging.From(r.Context()).Warn("request rejected",
			slog.Int("status_code", code),
			slog.Any("error", err),
		)
	}

	respondJSON(w, code, &errorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrAuthRequired):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, types.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, types.ErrTokenNotConfigured):
		return http.StatusBadRequest, "no access token is configured for the repository"
	case errors.Is(err, types.ErrValidationFailed):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, "already registered"
	case errors.Is(err, types.ErrUpstream), errors.Is(err, types.ErrAggregation):
		return http.StatusBadGateway, "upstream request failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func runIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "runID")
	runID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || runID <= 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "run ID must be a positive integer",
			goerr.V("runID", raw),
		)
	}
	return runID, nil
}
