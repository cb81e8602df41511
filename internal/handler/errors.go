package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "draft not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err, domain.ErrValidation))
}

func conflictBody(err error) gen.ErrorResponse {
	return errorBody("conflict", unwrapMessage(err, domain.ErrConflict))
}

func reasonRequiredBody() gen.ErrorResponse {
	return errorBody("reason_required", domain.ErrReasonRequired.Error())
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

// writeJSON encodes v as the response body with the given status. Only used
// for answers produced outside a typed gen response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody(code, message))
}

// paramError answers a path or query parameter the generated router could
// not bind, e.g. a draftID that is not a UUID.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	msg := err.Error()
	var invalid *gen.InvalidParamFormatError
	if errors.As(err, &invalid) {
		msg = invalid.ParamName + " is malformed"
	}
	writeErrorBody(w, http.StatusBadRequest, "bad_request", msg)
}

// requestError answers a JSON body the generated server could not decode.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeErrorBody(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
	case errors.Is(err, io.EOF):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
	default:
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	}
}

// responseError handles an error a handler returned instead of a typed
// response, and a typed response that failed to encode.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, err, "resource not found")
}

// writeError maps a service error to its HTTP status. notFound is the message
// used for domain.ErrNotFound. Anything unrecognised is logged and answered
// with a generic 500 so internals never leak.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", notFound)
	case errors.Is(err, domain.ErrReasonRequired):
		writeErrorBody(w, http.StatusUnprocessableEntity, "reason_required", domain.ErrReasonRequired.Error())
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrConflict):
		writeErrorBody(w, http.StatusConflict, "conflict", unwrapMessage(err, domain.ErrConflict))
	default:
		s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorBody(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part that follows a wrapped sentinel.
// e.g. "service.DraftService.SelectDate: validation error: 2024-06-03 is not available" → "2024-06-03 is not available"
// A sentinel with nothing after it yields the sentinel's own text.
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error()
	if i := strings.LastIndex(msg, marker+": "); i >= 0 {
		return msg[i+len(marker)+2:]
	}
	if i := strings.LastIndex(msg, ": "+marker); i >= 0 && strings.HasSuffix(msg, marker) {
		// "...: slot already cancelled: conflict" puts the detail before the sentinel.
		head := msg[:i]
		if j := strings.LastIndex(head, ": "); j >= 0 {
			return head[j+2:]
		}
	}
	return marker
}
