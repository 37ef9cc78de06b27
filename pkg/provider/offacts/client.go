// Package offacts implements provider.Provider for the Open Food Facts family
// of databases (Open Food Facts, Open Beauty Facts, Open Pet Food Facts, Open
// Products Facts). They share one API and response shape and differ only by
// host, so one Client type serves all of them.
package offacts

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

// Well-known hosts of the family.
const (
	FoodBaseURL     = "https://world.openfoodfacts.org"
	BeautyBaseURL   = "https://world.openbeautyfacts.org"
	PetFoodBaseURL  = "https://world.openpetfoodfacts.org"
	ProductsBaseURL = "https://world.openproductsfacts.org"
)

// requested limits the payload to what the record needs.
const requested = "product_name,generic_name,brands,categories,image_front_url,image_url"

// Options configures one family member.
type Options struct {
	// Name is the provider name used as ProductRecord.Source.
	Name string
	// BaseURL is the scheme and host of the database, e.g. FoodBaseURL.
	BaseURL string
	// UserAgent is sent on every request; the family asks clients to identify themselves.
	UserAgent string
}

// Client queries the v2 product endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

// Ensure Client conforms to the provider.Provider interface at compile time.
var _ provider.Provider = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, options Options) *Client {
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
	// https://openfoodfacts.github.io/openfoodfacts-server/api/ref-v2/
	if !provider.ValidBarcode(code) {
		return nil, nil
	}

	endpoint := c.options.BaseURL + "/api/v2/product/" + url.PathEscape(code) + ".json?fields=" + requested
	resp, err := provider.Get(ctx, c.httpClient, endpoint, http.Header{"User-Agent": {c.options.UserAgent}})
	if err != nil {
		return nil, err
	}
	// the v2 API answers unknown products with 404 and a status 0 body
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !resp.OK() {
		return nil, provider.StatusError(resp)
	}

	status, fields, err := decode(resp.Body)
	if err != nil {
		return nil, provider.Malformed(errors.Wrap(err, "decode product"))
	}
	if status != 1 {
		return nil, nil
	}

	return provider.Normalize(c.options.Name, fields), nil
}

func decode(body []byte) (int, provider.Fields, error) {
	var (
		status      int
		fields      provider.Fields
		genericName string
		image       string
	)

	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "status":
			if d.Next() != jx.Number {
				return d.Skip()
			}
			v, err := d.Int()
			status = v

			return err
		case "product":
			if d.Next() != jx.Object {
				return d.Skip()
			}

			return d.Obj(func(d *jx.Decoder, key string) error {
				var err error
				switch key {
				case "product_name":
					fields.Name, err = provider.String(d)
				case "generic_name":
					genericName, err = provider.String(d)
				case "brands":
					fields.Brand, err = provider.String(d)
				case "categories":
					fields.Category, err = provider.String(d)
				case "image_front_url":
					fields.Image, err = provider.String(d)
				case "image_url":
					image, err = provider.String(d)
				default:
					err = d.Skip()
				}

				return err
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return 0, provider.Fields{}, err
	}

	if strings.TrimSpace(fields.Name) == "" {
		fields.Name = genericName
	}
	if strings.TrimSpace(fields.Image) == "" {
		fields.Image = image
	}

	return status, fields, nil
}
