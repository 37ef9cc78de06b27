// Package htmlmeta implements provider.Provider for product sites without a
// JSON API. It fetches a product page built from a URL template and reads the
// OpenGraph and schema.org microdata the page embeds.
package htmlmeta

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-faster/errors"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// CodePlaceholder is replaced with the (escaped) code in URLTemplate.
const CodePlaceholder = "{code}"

// Options configures the scraper.
type Options struct {
	Name string
	// URLTemplate is the product page address, e.g. "https://www.barcodelookup.com/{code}".
	URLTemplate string
	UserAgent   string
	// NotFoundMarker, when non-empty, is a substring of the page title that
	// sites use on their "no results" page while still answering 200.
	NotFoundMarker string
}

// Client scrapes product pages. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

// Ensure Client conforms to the provider.Provider interface at compile time.
var _ provider.Provider = (*Client)(nil)

// New validates the template and constructs a Client.
func New(httpClient *http.Client, options Options) (*Client, error) {
	if !strings.Contains(options.URLTemplate, CodePlaceholder) {
		return nil, serrors.With(serrors.ErrBadRequest, "url template %q has no %s placeholder",
			options.URLTemplate, CodePlaceholder)
	}
	if _, err := url.Parse(strings.ReplaceAll(options.URLTemplate, CodePlaceholder, "0")); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid url template")
	}
	if options.UserAgent == "" {
		options.UserAgent = provider.DefaultUserAgent
	}

	return &Client{httpClient: httpClient, options: options}, nil
}

// Name implements provider.Provider.
func (c *Client) Name() string { return c.options.Name }

// Fetch implements provider.Provider.
func (c *Client) Fetch(ctx context.Context, code string) (*domain.ProductRecord, error) {
	if !provider.ValidBarcode(code) {
		return nil, nil
	}

	pageURL := strings.ReplaceAll(c.options.URLTemplate, CodePlaceholder, url.PathEscape(code))
	resp, err := provider.Get(ctx, c.httpClient, pageURL, http.Header{
		"User-Agent": {c.options.UserAgent},
		"Accept":     {"text/html"},
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return nil, nil
	}
	if !resp.OK() {
		return nil, provider.StatusError(resp)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, provider.Malformed(errors.Wrap(err, "parse page"))
	}

	if marker := c.options.NotFoundMarker; marker != "" &&
		strings.Contains(strings.ToLower(doc.Find("title").First().Text()), strings.ToLower(marker)) {
		return nil, nil
	}

	return provider.Normalize(c.options.Name, extract(doc, pageURL)), nil
}

// extract prefers schema.org microdata and falls back to OpenGraph tags.
func extract(doc *goquery.Document, pageURL string) provider.Fields {
	product := doc.Find(`[itemtype$="schema.org/Product"]`).First()
	scope := doc.Selection
	if product.Length() > 0 {
		scope = product
	}

	fields := provider.Fields{
		Name:     firstNonEmpty(itemprop(scope, "name"), meta(doc, "og:title")),
		Brand:    firstNonEmpty(itemprop(scope.Find(`[itemprop="brand"]`), "name"), itemprop(scope, "brand"), meta(doc, "product:brand")),
		Category: firstNonEmpty(itemprop(scope, "category"), meta(doc, "product:category")),
		Image:    firstNonEmpty(itemprop(scope, "image"), meta(doc, "og:image")),
	}
	fields.Image = absolute(pageURL, fields.Image)

	return fields
}

func meta(doc *goquery.Document, property string) string {
	sel := doc.Find(`meta[property="` + property + `"]`)
	if sel.Length() == 0 {
		sel = doc.Find(`meta[name="` + property + `"]`)
	}

	return strings.TrimSpace(sel.First().AttrOr("content", ""))
}

// itemprop reads a microdata property from a content/src attribute or the element text.
func itemprop(scope *goquery.Selection, name string) string {
	el := scope.Find(`[itemprop="` + name + `"]`).First()
	if el.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"content", "src", "href"} {
		if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	return strings.TrimSpace(el.Text())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func absolute(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	return b.ResolveReference(r).String()
}
