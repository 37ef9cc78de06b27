package provider_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestGet_setsDefaultUserAgent(t *testing.T) {
	client := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, provider.DefaultUserAgent, r.Header.Get("User-Agent"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		return &http.Response{StatusCode: http.StatusTeapot, Body: io.NopCloser(strings.NewReader("short"))}, nil
	})}

	resp, err := provider.Get(context.Background(), client, "https://example.com/x",
		http.Header{"Accept": {"application/json"}})
	require.NoError(t, err)
	require.False(t, resp.OK())
	require.Equal(t, "short", string(resp.Body))

	statusErr := provider.StatusError(resp)
	require.ErrorIs(t, statusErr, serrors.ErrNetwork)
	require.Contains(t, statusErr.Error(), "418")

	limited := provider.StatusError(provider.Response{StatusCode: http.StatusTooManyRequests, Body: []byte("slow down")})
	require.ErrorIs(t, limited, serrors.ErrRateLimited)
	require.NotErrorIs(t, limited, serrors.ErrNetwork)
}

func TestTransportError(t *testing.T) {
	require.ErrorIs(t, provider.TransportError(context.Background(), errors.New("refused")), serrors.ErrNetwork)
	require.ErrorIs(t,
		provider.TransportError(context.Background(), context.DeadlineExceeded), serrors.ErrTimeout)

	expired, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	require.ErrorIs(t, provider.TransportError(expired, errors.New("read: closed")), serrors.ErrTimeout)
}

func TestMalformed(t *testing.T) {
	require.ErrorIs(t, provider.Malformed(errors.New("eof")), serrors.ErrMalformedResponse)
}

func TestString(t *testing.T) {
	var got []string
	err := jx.DecodeStr(`{"a":"x","b":null,"c":12,"d":["y","z"],"e":[]}`).Obj(func(d *jx.Decoder, key string) error {
		var (
			s   string
			err error
		)
		if key == "d" || key == "e" {
			s, err = provider.FirstString(d)
		} else {
			s, err = provider.String(d)
		}
		got = append(got, s)

		return err
	})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "", "", "y", ""}, got)
}
