// Package classifier decides what a decoded payload means. Classification is
// pure and safe for concurrent use.
package classifier

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

var (
	tldToken   = regexp.MustCompile(`(?i)\.(com|org|net)\b`) //nolint: gochecknoglobals
	phoneShape = regexp.MustCompile(`^\+?[0-9 ()\-]+$`)       //nolint: gochecknoglobals
	// bare GTIN-8, UPC-A, EAN-13 and GTIN-14 digit runs
	gtinShape = regexp.MustCompile(`^([0-9]{8}|[0-9]{12,14})$`) //nolint: gochecknoglobals
)

const (
	minPhoneDigits = 3
	maxPhoneDigits = 15
)

// Classify returns the content kind of payload. Rules are applied in order
// and the first match wins:
//
//  1. QR payloads that look like web addresses are URL.
//  2. "WIFI:" payloads are WIFI.
//  3. "tel:" payloads, and phone-shaped QR payloads, are PHONE. A bare digit
//     run of GTIN length is barcode-shaped, not phone-shaped.
//  4. Payloads containing "@" and "." are EMAIL.
//  5. Anything read from a linear symbology is BARCODE.
//  6. Everything else is PLAIN_TEXT.
func Classify(payload string, format domain.CodeFormat) domain.ContentKind {
	p := strings.TrimSpace(payload)
	lower := strings.ToLower(p)

	switch {
	case format == domain.FormatQR && looksLikeURL(p, lower):
		return domain.KindURL
	case strings.HasPrefix(lower, "wifi:"):
		return domain.KindWifi
	case strings.HasPrefix(lower, "tel:"),
		format == domain.FormatQR && isPhone(p):
		return domain.KindPhone
	case strings.HasPrefix(lower, "mailto:"),
		strings.Contains(p, "@") && strings.Contains(p, "."):
		return domain.KindEmail
	case format != domain.FormatQR:
		return domain.KindBarcode
	default:
		return domain.KindPlainText
	}
}

func looksLikeURL(p, lower string) bool {
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return true
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	if strings.Contains(lower, "www.") {
		return true
	}

	// an address such as a@b.com is never a URL
	return !strings.Contains(p, "@") && tldToken.MatchString(p)
}

func isPhone(p string) bool {
	if !phoneShape.MatchString(p) || gtinShape.MatchString(p) {
		return false
	}

	var digits int
	for _, r := range p {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
