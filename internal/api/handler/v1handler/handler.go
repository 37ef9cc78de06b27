// Package v1handler implements the version 1 HTTP API: payload
// classification, synchronous resolution and the user's asynchronous lookups.
package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// maxBodyBytes bounds request bodies; every v1 request is a small JSON object.
const maxBodyBytes = 64 << 10

// Deps are the services behind the v1 endpoints.
type Deps struct {
	// Lookups stores and lists asynchronous lookups.
	Lookups lookup.Service
	// Resolver runs the provider chain for synchronous resolves.
	Resolver lookup.Resolver
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on r. Classification is public; everything
// touching providers or stored lookups requires a bearer token.
func (h *Handler) Register(r *mux.Router, sec *SecHandler) {
	r.HandleFunc("/classify", h.Classify).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(sec.Middleware(h.WriteError))
	authed.HandleFunc("/resolve", h.Resolve).Methods(http.MethodPost)
	authed.HandleFunc("/lookups", h.CreateLookup).Methods(http.MethodPost)
	authed.HandleFunc("/lookups", h.ListLookups).Methods(http.MethodGet)
	authed.HandleFunc("/lookups/{id}", h.GetLookup).Methods(http.MethodGet)
	authed.HandleFunc("/lookups/{id}", h.DeleteLookup).Methods(http.MethodDelete)
}

// ErrorResponse is the body and status sent for a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// errorMappings lists the semantic kinds exposed to clients, their status and
// the message used when the error carries none.
var errorMappings = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "upstream timed out"},
	{serrors.ErrNetwork, http.StatusBadGateway, "upstream unavailable"},
	{serrors.ErrMalformedResponse, http.StatusBadGateway, "upstream answered with an invalid response"},
}

// NewError maps err onto the response sent to the client. Errors without a
// known kind become a 500 whose details are only logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		msg := m.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			msg = se.Message()
		}
		logger.Debug(ctx, "request failed", zap.String("kind", m.kind.Error()), zap.Error(err))

		return &ErrorResponse{StatusCode: m.status, Code: m.kind.Error(), Message: msg}
	}

	logger.Error(ctx, "request failed with an internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}

// WriteError writes the response NewError builds for err.
func (h Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// readObject decodes the JSON object in the request body field by field.
func readObject(w http.ResponseWriter, r *http.Request, field func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if err := jx.DecodeBytes(body).Obj(field); err != nil {
		var se *serrors.Error
		if errors.As(err, &se) {
			return err
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return nil
}

// badField reports a field with an unexpected type or value.
func badField(key string, err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %q", key)
}
