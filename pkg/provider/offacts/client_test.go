package offacts_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider/offacts"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *offacts.Client {
	return offacts.New(&http.Client{Transport: fn}, offacts.Options{
		Name:      "openfoodfacts",
		BaseURL:   offacts.FoodBaseURL + "/",
		UserAgent: "test-agent",
	})
}

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestClient_Fetch_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "world.openfoodfacts.org", r.URL.Host)
		require.Equal(t, "/api/v2/product/3017620422003.json", r.URL.Path)
		require.Contains(t, r.URL.Query().Get("fields"), "product_name")
		require.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		return respond(http.StatusOK, `{
			"code": "3017620422003",
			"status": 1,
			"status_verbose": "product found",
			"product": {
				"product_name": "  Nutella ",
				"brands": "Ferrero, Nutella",
				"categories": "Spreads, Sweet spreads, en:hazelnut-spreads",
				"image_front_url": "https://images.openfoodfacts.org/images/products/301/762/042/2003/front_en.jpg",
				"nutriments": {"energy": 2252}
			}
		}`)(r)
	})

	rec, err := c.Fetch(context.Background(), "3017620422003")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "openfoodfacts", rec.Source)
	require.Equal(t, "Nutella", *rec.Name)
	require.Equal(t, "Ferrero", *rec.Brand)
	require.Equal(t, "hazelnut-spreads", *rec.Category)
	require.NotNil(t, rec.Image)
}

func TestClient_Fetch_fallbackFields(t *testing.T) {
	c := newTestClient(respond(http.StatusOK, `{"status":1,"product":{
		"product_name": "",
		"generic_name": "Sparkling water",
		"brands": null,
		"image_url": "not a url"
	}}`))

	rec, err := c.Fetch(context.Background(), "5449000000996")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "Sparkling water", *rec.Name)
	require.Nil(t, rec.Brand)
	require.Nil(t, rec.Category)
	require.Nil(t, rec.Image)
}

func TestClient_Fetch_notFound(t *testing.T) {
	c := newTestClient(respond(http.StatusNotFound, `{"status":0,"status_verbose":"product not found"}`))

	rec, err := c.Fetch(context.Background(), "0000000000000")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestClient_Fetch_statusZero(t *testing.T) {
	c := newTestClient(respond(http.StatusOK, `{"status":0,"product":null}`))

	rec, err := c.Fetch(context.Background(), "12345678")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestClient_Fetch_skipsNonBarcodes(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected for a non-barcode payload")

		return nil, nil
	})

	rec, err := c.Fetch(context.Background(), "hello world")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestClient_Fetch_malformed(t *testing.T) {
	c := newTestClient(respond(http.StatusOK, `{"status":1,"product":{"product_name":`))

	_, err := c.Fetch(context.Background(), "3017620422003")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrMalformedResponse)
}

func TestClient_Fetch_serverError(t *testing.T) {
	c := newTestClient(respond(http.StatusBadGateway, "upstream bad"))

	_, err := c.Fetch(context.Background(), "3017620422003")
	require.ErrorIs(t, err, serrors.ErrNetwork)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Fetch_transportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.Fetch(context.Background(), "3017620422003")
	require.ErrorIs(t, err, serrors.ErrNetwork)
}

func TestClient_Fetch_deadline(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()

		return nil, r.Context().Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := c.Fetch(ctx, "3017620422003")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestClient_Name(t *testing.T) {
	c := offacts.New(http.DefaultClient, offacts.Options{Name: "openbeautyfacts", BaseURL: offacts.BeautyBaseURL})
	require.Equal(t, "openbeautyfacts", c.Name())
}
