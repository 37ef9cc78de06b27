package domain

import "strings"

// CodeFormat is the symbology a code was decoded from.
type CodeFormat string

const (
	FormatQR      CodeFormat = "QR"
	FormatEAN13   CodeFormat = "EAN13"
	FormatUPCA    CodeFormat = "UPC_A"
	FormatCode128 CodeFormat = "CODE128"
	FormatCode39  CodeFormat = "CODE39"
	FormatUnknown CodeFormat = "UNKNOWN"
)

// ParseCodeFormat maps a symbology name to a CodeFormat. Matching ignores case,
// dashes and underscores so "ean-13", "EAN_13" and "ean13" are all EAN13.
// Unrecognized names yield FormatUnknown.
func ParseCodeFormat(s string) CodeFormat {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToUpper(strings.TrimSpace(s)))
	switch norm {
	case "QR", "QRCODE":
		return FormatQR
	case "EAN13":
		return FormatEAN13
	case "UPCA", "UPC":
		return FormatUPCA
	case "CODE128":
		return FormatCode128
	case "CODE39":
		return FormatCode39
	default:
		return FormatUnknown
	}
}

// IsLinear reports whether the format is a one-dimensional barcode symbology.
func (f CodeFormat) IsLinear() bool {
	return f != FormatQR
}

// DecodedCode is produced once per successful frame decode.
type DecodedCode struct {
	Payload string     `json:"payload"`
	Format  CodeFormat `json:"format"`
}

// ContentKind is the semantic classification of a decoded payload.
type ContentKind string

const (
	KindURL       ContentKind = "URL"
	KindEmail     ContentKind = "EMAIL"
	KindPhone     ContentKind = "PHONE"
	KindWifi      ContentKind = "WIFI"
	KindBarcode   ContentKind = "BARCODE"
	KindPlainText ContentKind = "PLAIN_TEXT"
)
