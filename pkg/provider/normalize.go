package provider

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// Fields is the provider-agnostic shape adapters extract from an upstream
// response before normalization. Empty strings mean "absent".
type Fields struct {
	Name     string
	Brand    string
	Category string
	Image    string
}

// Empty reports whether the upstream supplied nothing that identifies a
// product. An upstream hit with no name and no brand is treated as a miss.
func (f Fields) Empty() bool {
	return clean(f.Name) == "" && clean(f.Brand) == ""
}

// Normalize maps extracted fields into a ProductRecord stamped with source.
// Whitespace is collapsed, blank values become nil, comma separated brand and
// category lists are reduced to a single entry (first brand, most specific
// category) and images that are not absolute http(s) URLs are dropped.
// It returns nil when the fields are Empty.
func Normalize(source string, f Fields) *domain.ProductRecord {
	if f.Empty() {
		return nil
	}

	return &domain.ProductRecord{
		Name:     optional(clean(f.Name)),
		Brand:    optional(firstOf(f.Brand)),
		Category: optional(lastOf(f.Category)),
		Image:    optional(imageURL(f.Image)),
		Source:   source,
	}
}

// clean trims s and collapses internal whitespace runs to single spaces.
func clean(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func firstOf(list string) string {
	for _, part := range strings.Split(list, ",") {
		if p := clean(part); p != "" {
			return p
		}
	}

	return ""
}

func lastOf(list string) string {
	parts := strings.Split(list, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := clean(parts[i]); p != "" {
			// taxonomy tags such as "en:beverages" carry a language prefix
			if idx := strings.Index(p, ":"); idx > 0 && idx <= 3 {
				p = strings.TrimSpace(p[idx+1:])
			}

			return p
		}
	}

	return ""
}

func imageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}

	return u.String()
}

// ValidBarcode reports whether code looks like a GTIN family barcode
// (EAN-8, UPC-A, EAN-13, GTIN-14): 8 to 14 digits. Numeric-only upstreams use
// it to skip payloads they can never know without spending a request.
func ValidBarcode(code string) bool {
	if len(code) < 8 || len(code) > 14 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
