package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/gorilla/mux"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func lookupIDFromPath(r *http.Request) (domain.LookupID, error) {
	id, err := domain.ParseLookupID(mux.Vars(r)["id"])
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid lookup id")
	}

	return id, nil
}

// CreateLookup queues a lookup and answers 202 with it in PENDING state.
func (h Handler) CreateLookup(w http.ResponseWriter, r *http.Request) {
	req, err := readCodeRequest(w, r, "code")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	l, err := h.deps.Lookups.Enqueue(r.Context(), GetUserIDFromContext(r.Context()), req.value, req.format)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.Header().Set("Location", "/v1/lookups/"+l.ID.String())
	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) { EncodeLookup(e, *l) })
}

// GetLookup returns one of the caller's lookups.
func (h Handler) GetLookup(w http.ResponseWriter, r *http.Request) {
	id, err := lookupIDFromPath(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	l, err := h.deps.Lookups.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeLookup(e, *l) })
}

// DeleteLookup removes one of the caller's lookups.
func (h Handler) DeleteLookup(w http.ResponseWriter, r *http.Request) {
	id, err := lookupIDFromPath(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err := h.deps.Lookups.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLookups returns a page of the caller's lookups, newest first.
// Query parameters: status, cursor and limit.
func (h Handler) ListLookups(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := domain.LookupStatus(q.Get("status"))
	switch status {
	case "", domain.LookupStatusPending, domain.LookupStatusCompleted, domain.LookupStatusFailed:
	default:
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "invalid status %q", status))

		return
	}

	limit := DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLimit {
			h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = n
	}

	lookups, next, err := h.deps.Lookups.UserLookups(r.Context(),
		GetUserIDFromContext(r.Context()),
		status,
		q.Get("cursor"),
		uint(limit)) //nolint: gosec
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, l := range lookups {
						EncodeLookup(e, l)
					}
				})
			})
			e.Field("nextCursor", func(e *jx.Encoder) {
				if next == "" {
					e.Null()

					return
				}
				e.Str(next)
			})
		})
	})
}
