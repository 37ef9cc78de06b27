package upcitemdb_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider/upcitemdb"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func reply(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const itemsBody = `{
	"code": "OK",
	"total": 1,
	"offset": 0,
	"items": [{
		"ean": "0885909950805",
		"title": "Apple iPhone 6, Gold, 64 GB",
		"brand": "Apple",
		"category": "Electronics > Communications > Telephony > Mobile Phones",
		"images": ["http://img.example.com/iphone.jpg", "http://img.example.com/other.jpg"],
		"offers": []
	}]
}`

func TestClient_Fetch_trial(t *testing.T) {
	c := upcitemdb.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/prod/trial/lookup", r.URL.Path)
		require.Equal(t, "0885909950805", r.URL.Query().Get("upc"))
		require.Empty(t, r.Header.Get("user_key"))

		return reply(http.StatusOK, itemsBody), nil
	})}, upcitemdb.Options{Name: "upcitemdb"})

	rec, err := c.Fetch(context.Background(), "0885909950805")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "upcitemdb", rec.Source)
	require.Equal(t, "Apple iPhone 6, Gold, 64 GB", *rec.Name)
	require.Equal(t, "Apple", *rec.Brand)
	require.Equal(t, "Mobile Phones", *rec.Category)
	require.Equal(t, "http://img.example.com/iphone.jpg", *rec.Image)
}

func TestClient_Fetch_paidUsesKey(t *testing.T) {
	c := upcitemdb.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/prod/v1/lookup", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("user_key"))
		require.Equal(t, "3scale", r.Header.Get("key_type"))

		return reply(http.StatusOK, itemsBody), nil
	})}, upcitemdb.Options{Name: "upcitemdb", APIKey: "secret"})

	rec, err := c.Fetch(context.Background(), "0885909950805")
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestClient_Fetch_noItems(t *testing.T) {
	c := upcitemdb.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return reply(http.StatusOK, `{"code":"OK","total":0,"offset":0,"items":[]}`), nil
	})}, upcitemdb.Options{Name: "upcitemdb"})

	rec, err := c.Fetch(context.Background(), "12345678")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestClient_Fetch_invalidUPCIsMiss(t *testing.T) {
	c := upcitemdb.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return reply(http.StatusBadRequest, `{"code":"INVALID_UPC","message":"Not a valid UPC code."}`), nil
	})}, upcitemdb.Options{Name: "upcitemdb"})

	rec, err := c.Fetch(context.Background(), "12345678")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestClient_Fetch_rateLimited(t *testing.T) {
	c := upcitemdb.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return reply(http.StatusTooManyRequests, `{"code":"TOO_FAST"}`), nil
	})}, upcitemdb.Options{Name: "upcitemdb"})

	_, err := c.Fetch(context.Background(), "12345678")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, err.Error(), "rate limited")
}

func TestClient_Fetch_malformed(t *testing.T) {
	c := upcitemdb.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return reply(http.StatusOK, `<html>maintenance</html>`), nil
	})}, upcitemdb.Options{Name: "upcitemdb"})

	_, err := c.Fetch(context.Background(), "12345678")
	require.ErrorIs(t, err, serrors.ErrMalformedResponse)
}
