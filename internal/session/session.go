package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/classifier"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/navigator"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// DefaultMaxScansPerSecond is used when Options.MaxScansPerSecond is not positive.
const DefaultMaxScansPerSecond = 5

// Options tune a Session.
type Options struct {
	// MaxScansPerSecond caps how many frames are decoded per second.
	MaxScansPerSecond float64
	// FacingMode is passed to the camera on every acquisition.
	FacingMode string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxScansPerSecond: cfg.Session.MaxScansPerSecond,
		FacingMode:        cfg.Session.FacingMode,
	}
}

// Deps are the collaborators of a Session. Environment may be nil, in which
// case the host is assumed to support camera access.
type Deps struct {
	Camera      Camera
	Decoder     Decoder
	Environment Environment
	Resolver    lookup.Resolver
	Navigator   Navigator
	Sink        Sink
}

// Session is the state machine of one scan widget:
//
//	IDLE -> ACQUIRING -> SCANNING -> RESOLVING -> IDLE
//	ACQUIRING -> TERMINAL
//
// Only one run is active at a time. Methods are safe for concurrent use.
type Session struct {
	id      string
	options Options
	deps    Deps

	// mu guards everything below and serializes sink emission, so nothing
	// from a stopped run reaches the sink after Stop returns.
	mu     sync.Mutex
	state  domain.SessionState
	closed bool
	// run is bumped whenever a run starts or is abandoned; a goroutine only
	// acts while its own number is current.
	run    uint64
	cancel context.CancelFunc
	stream *heldStream
	done   chan struct{}
}

// New returns an idle Session.
func New(deps Deps, options Options) *Session {
	if options.MaxScansPerSecond <= 0 {
		options.MaxScansPerSecond = DefaultMaxScansPerSecond
	}

	return &Session{
		id:      uuid.NewString(),
		options: options,
		deps:    deps,
		state:   domain.SessionState{Phase: domain.PhaseIdle},
	}
}

// ID identifies the session in events and logs.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Start begins a run from IDLE or TERMINAL. It returns serrors.ErrConflict
// while a run is in progress or after Close. The run stops when ctx is done.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return serrors.With(serrors.ErrConflict, "session is closed")
	}
	if s.state.Busy() {
		return serrors.With(serrors.ErrConflict, "session is already %s", s.state)
	}

	s.run++
	ctx = logger.WithSession(ctx, s.id)
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.setState(domain.SessionState{Phase: domain.PhaseAcquiring})

	go s.loop(ctx, s.run, s.done)

	return nil
}

// Stop abandons the current run and returns to IDLE. A camera being
// acquired or a decode loop is cancelled and the stream released. A
// resolution in flight is left to finish, but its result is dropped and no
// navigation happens. Stop is a no-op in IDLE and TERMINAL.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Busy() {
		return
	}
	s.abandon()
	s.setState(domain.SessionState{Phase: domain.PhaseIdle})
}

// Close stops the session for good. Later Start calls fail.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.state.Busy() {
		s.abandon()
		s.setState(domain.SessionState{Phase: domain.PhaseIdle})
	}

	return nil
}

// Wait blocks until the goroutine of the latest run has returned.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// abandon invalidates the current run. Callers hold mu.
func (s *Session) abandon() {
	s.run++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.stream != nil {
		s.stream.release()
		s.stream = nil
	}
}

// settle ends the current run in state. Callers hold mu.
func (s *Session) settle(state domain.SessionState) {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.stream = nil
	s.setState(state)
}

// setState records and announces a transition. Callers hold mu.
func (s *Session) setState(state domain.SessionState) {
	s.state = state
	s.emit(Event{Type: EventStateChanged})
}

// emit stamps and delivers an event. Callers hold mu.
func (s *Session) emit(event Event) {
	if s.deps.Sink == nil {
		return
	}
	event.SessionID = s.id
	event.State = s.state
	s.deps.Sink.Emit(event)
}

// locked runs fn under mu if run is still current and reports whether it did.
func (s *Session) locked(run uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run != s.run {
		return false
	}
	fn()

	return true
}

func (s *Session) loop(ctx context.Context, run uint64, done chan struct{}) {
	defer close(done)

	if err := s.preflight(); err != nil {
		if ctx.Err() != nil {
			s.teardown(ctx, run)

			return
		}
		s.fail(ctx, run, err)

		return
	}

	stream, err := s.deps.Camera.Acquire(ctx, Constraints{FacingMode: s.options.FacingMode})
	if err != nil {
		if stream != nil {
			stream.Release()
		}
		// a cancelled run is not a camera failure
		if ctx.Err() != nil {
			s.teardown(ctx, run)

			return
		}
		s.fail(ctx, run, CameraErrorFrom(err))

		return
	}

	held := &heldStream{stream: stream}
	if !s.locked(run, func() {
		s.stream = held
		s.setState(domain.SessionState{Phase: domain.PhaseScanning})
	}) {
		// stopped while the camera was being acquired
		held.release()

		return
	}
	logger.Debug(ctx, "camera acquired, scanning")

	code, err := s.scan(ctx, stream)
	held.release()
	if err != nil {
		if s.locked(run, func() { s.settle(domain.SessionState{Phase: domain.PhaseIdle}) }) {
			logger.Info(ctx, "scanning ended without a code", zap.Error(err))
		}

		return
	}

	s.resolve(ctx, run, code)
}

// scan decodes frames until one yields a code. Frames without a code are
// noise; other decoder errors are logged and scanning goes on.
func (s *Session) scan(ctx context.Context, stream Stream) (domain.DecodedCode, error) {
	limiter := rate.NewLimiter(rate.Limit(s.options.MaxScansPerSecond), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return domain.DecodedCode{}, err //nolint: wrapcheck
		}

		code, err := s.deps.Decoder.Decode(ctx, stream)
		switch {
		case err == nil:
			return code, nil
		case errors.Is(err, ErrNotFound):
			continue
		case errors.Is(err, ErrStreamEnded), ctx.Err() != nil:
			return domain.DecodedCode{}, err //nolint: wrapcheck
		default:
			logger.Debug(ctx, "frame could not be decoded", zap.Error(err))
		}
	}
}

func (s *Session) resolve(ctx context.Context, run uint64, code domain.DecodedCode) {
	ctx = logger.WithFields(ctx, zap.String(logger.CodeKey, code.Payload))

	kind := classifier.Classify(code.Payload, code.Format)
	details := classifier.Describe(kind, code.Payload)
	if !s.locked(run, func() {
		s.stream = nil
		s.setState(domain.SessionState{Phase: domain.PhaseResolving})
		s.emit(Event{Type: EventDecoded, Code: &code})
		s.emit(Event{Type: EventClassified, Code: &code, Kind: kind, Details: &details})
	}) {
		return
	}
	logger.Info(ctx, "code decoded", zap.String("format", string(code.Format)), zap.String("kind", string(kind)))

	switch kind {
	case domain.KindURL:
		s.locked(run, func() {
			if s.deps.Navigator == nil {
				return
			}
			action := s.deps.Navigator.Navigate(ctx, code.Payload)
			s.emit(Event{Type: EventNavigated, Code: &code, Action: action, URL: navigator.Normalize(code.Payload)})
		})
	case domain.KindBarcode:
		if s.deps.Resolver == nil {
			break
		}
		// Stop must not interrupt providers mid-call, it only drops the result
		outcome := s.deps.Resolver.Resolve(context.WithoutCancel(ctx), code.Payload)
		if !s.locked(run, func() {
			s.emit(Event{Type: EventResolved, Code: &code, Outcome: &outcome})
		}) {
			logger.Debug(ctx, "session stopped during resolution, outcome dropped")
		}
	}

	s.locked(run, func() { s.settle(domain.SessionState{Phase: domain.PhaseIdle}) })
}

func (s *Session) preflight() *domain.CameraError {
	env := s.deps.Environment
	if env == nil {
		return nil
	}
	if !env.Supported() {
		return &domain.CameraError{Kind: domain.CameraUnsupported, Cause: ErrUnsupported}
	}
	if !env.SecureContext() {
		return &domain.CameraError{Kind: domain.CameraUnsupported, Cause: domain.ErrInsecureContext}
	}

	return nil
}

// teardown ends a run whose context was cancelled by the caller.
func (s *Session) teardown(ctx context.Context, run uint64) {
	if s.locked(run, func() { s.settle(domain.SessionState{Phase: domain.PhaseIdle}) }) {
		logger.Debug(ctx, "run cancelled before scanning", zap.Error(ctx.Err()))
	}
}

func (s *Session) fail(ctx context.Context, run uint64, camErr *domain.CameraError) {
	if !s.locked(run, func() {
		s.settle(domain.SessionState{Phase: domain.PhaseTerminal, Err: camErr})
		s.emit(Event{Type: EventCameraFailed, CameraError: camErr, Message: camErr.Message()})
	}) {
		return
	}

	logger.Warn(ctx, "camera failed", zap.String("kind", string(camErr.Kind)), zap.Error(camErr))
}

// heldStream releases its stream at most once.
type heldStream struct {
	stream Stream
	once   sync.Once
}

func (h *heldStream) release() {
	h.once.Do(h.stream.Release)
}
