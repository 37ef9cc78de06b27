package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/classifier"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// codeRequest is the body of classify, resolve and lookup requests.
type codeRequest struct {
	value    string
	hasValue bool
	format   domain.CodeFormat
}

// readCodeRequest reads {"<valueKey>": string, "format": string}. The format
// is optional and defaults to UNKNOWN, or QR for classification.
func readCodeRequest(w http.ResponseWriter, r *http.Request, valueKey string) (codeRequest, error) {
	var req codeRequest
	err := readObject(w, r, func(d *jx.Decoder, key string) error {
		switch key {
		case valueKey:
			v, err := d.Str()
			if err != nil {
				return badField(key, err)
			}
			req.value, req.hasValue = v, true
		case "format":
			v, err := d.Str()
			if err != nil {
				return badField(key, err)
			}
			req.format = domain.ParseCodeFormat(v)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	})
	if err != nil {
		return req, err
	}
	if !req.hasValue {
		return req, serrors.With(serrors.ErrBadRequest, "%q is required", valueKey)
	}

	return req, nil
}

// Classify tells what a decoded payload is. The format defaults to QR.
func (h Handler) Classify(w http.ResponseWriter, r *http.Request) {
	req, err := readCodeRequest(w, r, "payload")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	if req.format == "" {
		req.format = domain.FormatQR
	}

	kind := classifier.Classify(req.value, req.format)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		EncodeDetails(e, classifier.Describe(kind, req.value))
	})
}
