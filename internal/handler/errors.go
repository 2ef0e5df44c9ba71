package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/ride-logbook/backend/internal/handler/gen"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

// Codes for failures detected before a request reaches the service.
const (
	codeBadRequest      result.Code = "BAD_REQUEST"
	codePayloadTooLarge result.Code = "PAYLOAD_TOO_LARGE"
)

// errorBody renders e as the body of every failed request:
//
//	{"error":{"code":"NOT_FOUND","message":"...","severity":"Warning"}}
func errorBody(e *result.Error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{
		Code:     string(e.Code),
		Message:  e.Message,
		Severity: e.Severity.String(),
	}}
}

// badRequest reports a malformed request. Its Warning severity keeps it in
// the 4xx class and the unrecognised code maps to 400.
func badRequest(message string) *result.Error {
	return &result.Error{Code: codeBadRequest, Message: message, Severity: result.SeverityWarning}
}

// errorResponses maps each failure status an operation declares onto the
// generated response type for it.
type errorResponses[R any] map[int]func(gen.ErrorResponse) R

// respond returns the declared response for e's status. A status the
// operation does not declare, 500 and 503 in particular, comes back as e
// itself and is rendered by responseError.
func (m errorResponses[R]) respond(_ context.Context, e *result.Error) (R, error) {
	if build, ok := m[e.HTTPStatus()]; ok {
		return build(errorBody(e)), nil
	}
	var none R
	return none, e
}

// requestError answers a request whose JSON body could not be decoded. A
// body cut off by the max-body-size middleware gets 413; anything else 400.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		e := &result.Error{Code: codePayloadTooLarge, Message: "Request body is too large.", Severity: result.SeverityWarning}
		s.writeJSON(w, http.StatusRequestEntityTooLarge, errorBody(e))
		return
	}
	s.logger.DebugContext(r.Context(), "decode request body", "error", err)
	s.writeError(w, badRequest("Request body is not valid JSON."))
}

// responseError renders an error a handler returned instead of a typed
// response. A *result.Error keeps its mapped status; anything else is 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	var e *result.Error
	if !errors.As(err, &e) {
		s.logger.ErrorContext(r.Context(), "handle request", "error", err, "path", r.URL.Path)
		e = result.Unexpected("An unexpected error occurred.")
	}
	s.writeError(w, e)
}

// paramError answers a path or query parameter the generated router could
// not bind.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	msg := err.Error()
	var invalid *gen.InvalidParamFormatError
	if errors.As(err, &invalid) {
		msg = "Invalid " + invalid.ParamName + " parameter."
	}
	s.writeError(w, badRequest(msg))
}

// unauthorized is the RequireUser fallback for requests without a user id.
func (s *Server) unauthorized(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, result.Unauthorized("The X-User-ID header is required."))
}

// writeError writes e with the status its severity and code map to.
func (s *Server) writeError(w http.ResponseWriter, e *result.Error) {
	s.writeJSON(w, e.HTTPStatus(), errorBody(e))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}
