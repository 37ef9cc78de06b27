package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// DefaultUserAgent identifies the scanner to upstreams that ask for one.
const DefaultUserAgent = "qr-scanner-app/1.0 (+https://github.com/ozvarsergen-rgb/qr-scanner-app)"

// Response is a fully read upstream HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get performs a GET request and reads the body. Transport failures are
// tagged serrors.ErrNetwork, deadline overruns serrors.ErrTimeout. Non-2xx
// statuses are not errors here; adapters decide what a status means.
func Get(ctx context.Context, client *http.Client, rawURL string, header http.Header) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("could not create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Response{}, TransportError(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, TransportError(ctx, err)
	}

	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

// TransportError tags a failed round trip with the matching semantic kind.
func TransportError(ctx context.Context, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return serrors.Wrap(serrors.ErrTimeout, err, "upstream timed out")
	default:
		return serrors.Wrap(serrors.ErrNetwork, err, "could not reach upstream")
	}
}

// StatusError reports an unexpected upstream status as a network failure,
// keeping a short excerpt of the body for diagnostics. 429 is tagged
// serrors.ErrRateLimited.
func StatusError(r Response) error {
	excerpt := strings.TrimSpace(string(r.Body))
	if len(excerpt) > 200 {
		excerpt = excerpt[:200]
	}
	if r.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited by upstream: %s", excerpt)
	}

	return serrors.With(serrors.ErrNetwork, "unexpected upstream status %d: %s", r.StatusCode, excerpt)
}

// Malformed tags a decoding failure.
func Malformed(err error) error {
	return serrors.Wrap(serrors.ErrMalformedResponse, err, "could not decode upstream response")
}
