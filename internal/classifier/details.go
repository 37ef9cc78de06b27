package classifier

import (
	"strings"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// Wifi holds the credentials carried by a "WIFI:" payload.
type Wifi struct {
	SSID     string `json:"ssid"`
	Security string `json:"security"`
	Password string `json:"password"`
	Hidden   bool   `json:"hidden"`
}

// Details is a display-ready view of a classified payload.
type Details struct {
	Kind domain.ContentKind `json:"kind"`
	// Display is the payload stripped of its scheme prefix (tel:, mailto:).
	Display string `json:"display"`
	Wifi    *Wifi  `json:"wifi,omitempty"`
}

// Describe parses payload according to kind.
func Describe(kind domain.ContentKind, payload string) Details {
	p := strings.TrimSpace(payload)
	d := Details{Kind: kind, Display: p}

	switch kind {
	case domain.KindPhone:
		d.Display = trimScheme(p, "tel:")
	case domain.KindEmail:
		addr := trimScheme(p, "mailto:")
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		d.Display = addr
	case domain.KindWifi:
		w := ParseWifi(p)
		d.Wifi = &w
		d.Display = w.SSID
	}

	return d
}

func trimScheme(p, scheme string) string {
	if len(p) >= len(scheme) && strings.EqualFold(p[:len(scheme)], scheme) {
		return strings.TrimSpace(p[len(scheme):])
	}

	return p
}

// ParseWifi reads the MECARD-like "WIFI:T:WPA;S:name;P:secret;H:true;;"
// format. Backslash escapes the special characters \ ; , : and ".
// Unknown fields are ignored.
func ParseWifi(payload string) Wifi {
	var w Wifi

	body := trimScheme(strings.TrimSpace(payload), "wifi:")
	for _, field := range splitEscaped(body) {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}
		value = unescape(value)
		switch strings.ToUpper(key) {
		case "S":
			w.SSID = value
		case "T":
			w.Security = strings.ToUpper(value)
		case "P":
			w.Password = value
		case "H":
			w.Hidden = strings.EqualFold(value, "true")
		}
	}

	return w
}

// splitEscaped splits s on unescaped semicolons, keeping escapes intact.
func splitEscaped(s string) []string {
	var (
		fields []string
		cur    strings.Builder
	)
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			cur.WriteByte(s[i])
			cur.WriteByte(s[i+1])
			i++
		case s[i] == ';':
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
			}
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}

	return fields
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
