// Package upcitemdb implements provider.Provider on top of the UPCitemdb
// lookup API. Without an API key the free trial endpoint is used.
package upcitemdb

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider"
)

const (
	// DefaultBaseURL is the public API host.
	DefaultBaseURL = "https://api.upcitemdb.com"

	trialPath = "/prod/trial/lookup"
	paidPath  = "/prod/v1/lookup"
)

// Options configures the client.
type Options struct {
	Name    string
	BaseURL string
	// APIKey switches to the paid endpoint when set.
	APIKey    string
	UserAgent string
}

// Client talks to UPCitemdb. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

// Ensure Client conforms to the provider.Provider interface at compile time.
var _ provider.Provider = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if options.UserAgent == "" {
		options.UserAgent = provider.DefaultUserAgent
	}
	options.BaseURL = strings.TrimRight(options.BaseURL, "/")

	return &Client{httpClient: httpClient, options: options}
}

// Name implements provider.Provider.
func (c *Client) Name() string { return c.options.Name }

// Fetch implements provider.Provider.
func (c *Client) Fetch(ctx context.Context, code string) (*domain.ProductRecord, error) {
	// https://www.upcitemdb.com/wp/docs/main/development/api-rate-limits/
	if !provider.ValidBarcode(code) {
		return nil, nil
	}

	header := http.Header{"User-Agent": {c.options.UserAgent}, "Accept": {"application/json"}}
	path := trialPath
	if c.options.APIKey != "" {
		path = paidPath
		header.Set("user_key", c.options.APIKey)
		header.Set("key_type", "3scale")
	}

	resp, err := provider.Get(ctx, c.httpClient, c.options.BaseURL+path+"?upc="+url.QueryEscape(code), header)
	if err != nil {
		return nil, err
	}
	// invalid codes come back as 400 INVALID_UPC; they are a miss, not a failure
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, nil
	}
	if !resp.OK() {
		return nil, provider.StatusError(resp)
	}

	fields, found, err := decode(resp.Body)
	if err != nil {
		return nil, provider.Malformed(errors.Wrap(err, "decode items"))
	}
	if !found {
		return nil, nil
	}

	return provider.Normalize(c.options.Name, fields), nil
}

// decode extracts the first item of the response.
func decode(body []byte) (provider.Fields, bool, error) {
	var (
		fields provider.Fields
		found  bool
	)

	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		if key != "items" || d.Next() != jx.Array {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			if found {
				return d.Skip()
			}
			found = true

			return d.Obj(func(d *jx.Decoder, key string) error {
				var err error
				switch key {
				case "title":
					fields.Name, err = provider.String(d)
				case "brand":
					fields.Brand, err = provider.String(d)
				case "category":
					// "Food, Beverages & Tobacco > Beverages > Coffee"
					var s string
					s, err = provider.String(d)
					if idx := strings.LastIndex(s, ">"); idx >= 0 {
						s = s[idx+1:]
					}
					fields.Category = s
				case "images":
					fields.Image, err = provider.FirstString(d)
				default:
					err = d.Skip()
				}

				return err
			})
		})
	})
	if err != nil {
		return provider.Fields{}, false, err
	}

	return fields, found, nil
}
