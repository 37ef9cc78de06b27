package main

import (
	"io"
	"sync"

	"github.com/go-faster/jx"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/api/handler/v1handler"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/session"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// lineSink writes every session event to w as one JSON object per line.
type lineSink struct {
	mu sync.Mutex
	w  io.Writer
	e  jx.Encoder
}

func newLineSink(w io.Writer) *lineSink {
	return &lineSink{w: w}
}

func (s *lineSink) Emit(event session.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.e.Reset()
	encodeEvent(&s.e, event)
	_, _ = s.w.Write(append(s.e.Bytes(), '\n'))
}

func encodeEvent(e *jx.Encoder, ev session.Event) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("type", func(e *jx.Encoder) { e.Str(string(ev.Type)) })
		e.Field("sessionId", func(e *jx.Encoder) { e.Str(ev.SessionID) })
		e.Field("state", func(e *jx.Encoder) { encodeState(e, ev.State) })
		if ev.Code != nil {
			e.Field("code", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("payload", func(e *jx.Encoder) { e.Str(ev.Code.Payload) })
					e.Field("format", func(e *jx.Encoder) { e.Str(string(ev.Code.Format)) })
				})
			})
		}
		if ev.Kind != "" {
			e.Field("kind", func(e *jx.Encoder) { e.Str(string(ev.Kind)) })
		}
		if ev.Details != nil {
			e.Field("details", func(e *jx.Encoder) { v1handler.EncodeDetails(e, *ev.Details) })
		}
		if ev.Outcome != nil {
			e.Field("outcome", func(e *jx.Encoder) { v1handler.EncodeOutcome(e, *ev.Outcome) })
		}
		if ev.Action != "" {
			e.Field("action", func(e *jx.Encoder) { e.Str(string(ev.Action)) })
		}
		if ev.URL != "" {
			e.Field("url", func(e *jx.Encoder) { e.Str(ev.URL) })
		}
		if ev.Message != "" {
			e.Field("message", func(e *jx.Encoder) { e.Str(ev.Message) })
		}
	})
}

func encodeState(e *jx.Encoder, st domain.SessionState) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("phase", func(e *jx.Encoder) { e.Str(string(st.Phase)) })
		if st.Err != nil {
			e.Field("error", func(e *jx.Encoder) { e.Str(string(st.Err.Kind)) })
		}
	})
}
