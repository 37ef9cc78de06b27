package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
)

// Resolve runs the provider chain for a code and answers with the outcome.
// An outcome without a record is still a 200; allFailed tells whether the
// providers errored or simply do not know the code.
func (h Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	req, err := readCodeRequest(w, r, "code")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	code, err := lookup.NormalizeCode(req.value)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	outcome := h.deps.Resolver.Resolve(r.Context(), code)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeOutcome(e, outcome) })
}
