package v1handler

import (
	"time"

	"github.com/go-faster/jx"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/classifier"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

func encodeNullableStr(e *jx.Encoder, s *string) {
	if s == nil {
		e.Null()

		return
	}
	e.Str(*s)
}

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

// EncodeRecord writes r with every field present; unknown fields are null.
func EncodeRecord(e *jx.Encoder, r *domain.ProductRecord) {
	if r == nil {
		e.Null()

		return
	}
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { encodeNullableStr(e, r.Name) })
		e.Field("brand", func(e *jx.Encoder) { encodeNullableStr(e, r.Brand) })
		e.Field("category", func(e *jx.Encoder) { encodeNullableStr(e, r.Category) })
		e.Field("image", func(e *jx.Encoder) { encodeNullableStr(e, r.Image) })
		e.Field("source", func(e *jx.Encoder) { e.Str(r.Source) })
	})
}

func encodeAttempt(e *jx.Encoder, a domain.Attempt) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("provider", func(e *jx.Encoder) { e.Str(a.Provider) })
		e.Field("outcome", func(e *jx.Encoder) { e.Str(string(a.Outcome)) })
		if a.ErrorKind != "" {
			e.Field("errorKind", func(e *jx.Encoder) { e.Str(string(a.ErrorKind)) })
		}
		if a.Error != "" {
			e.Field("error", func(e *jx.Encoder) { e.Str(a.Error) })
		}
		e.Field("elapsedMs", func(e *jx.Encoder) { e.Int64(a.Elapsed.Milliseconds()) })
	})
}

// EncodeOutcome writes o, including the derived found and allFailed flags.
func EncodeOutcome(e *jx.Encoder, o domain.LookupOutcome) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(o.Code) })
		e.Field("found", func(e *jx.Encoder) { e.Bool(o.Found()) })
		e.Field("allFailed", func(e *jx.Encoder) { e.Bool(o.AllFailed()) })
		e.Field("record", func(e *jx.Encoder) { EncodeRecord(e, o.Record) })
		e.Field("attempts", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, a := range o.Attempts {
					encodeAttempt(e, a)
				}
			})
		})
	})
}

// EncodeLookup writes l. The outcome is null until the lookup completed.
func EncodeLookup(e *jx.Encoder, l domain.Lookup) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(l.ID.String()) })
		e.Field("code", func(e *jx.Encoder) { e.Str(l.Code) })
		e.Field("format", func(e *jx.Encoder) { e.Str(string(l.Format)) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(l.Status)) })
		e.Field("outcome", func(e *jx.Encoder) {
			if l.Status != domain.LookupStatusCompleted {
				e.Null()

				return
			}
			EncodeOutcome(e, l.Outcome)
		})
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(l.Attempts) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, l.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, l.UpdatedAt) })
	})
}

// EncodeDetails writes a classification result.
func EncodeDetails(e *jx.Encoder, d classifier.Details) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(d.Kind)) })
		e.Field("display", func(e *jx.Encoder) { e.Str(d.Display) })
		if d.Wifi != nil {
			w := d.Wifi
			e.Field("wifi", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("ssid", func(e *jx.Encoder) { e.Str(w.SSID) })
					e.Field("security", func(e *jx.Encoder) { e.Str(w.Security) })
					e.Field("password", func(e *jx.Encoder) { e.Str(w.Password) })
					e.Field("hidden", func(e *jx.Encoder) { e.Bool(w.Hidden) })
				})
			})
		}
	})
}
