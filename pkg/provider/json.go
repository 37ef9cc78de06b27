package provider

import (
	"github.com/go-faster/jx"
)

// String reads the next value as a string. Null, numbers and booleans yield
// "" (numbers and booleans are skipped); upstreams are loose about types for
// optional fields and a wrong type must not fail the whole record.
func String(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Null:
		return "", d.Null()
	default:
		return "", d.Skip()
	}
}

// FirstString reads the next value as either a string or an array of strings
// and returns the first non-empty string.
func FirstString(d *jx.Decoder) (string, error) {
	if d.Next() != jx.Array {
		return String(d)
	}

	var first string
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := String(d)
		if err != nil {
			return err
		}
		if first == "" {
			first = s
		}

		return nil
	})

	return first, err
}
