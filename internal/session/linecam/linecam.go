// Package linecam feeds a scan session from text. Every input line is one
// frame holding an already decoded code, written as "FORMAT payload" or just
// "payload" for a QR code. Blank lines and lines starting with '#' are frames
// without a code.
package linecam

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/session"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// Camera reads frames from r. Lines left unread by one acquisition are
// seen by the next.
type Camera struct {
	r      io.Reader
	start  sync.Once
	frames chan session.Frame
	ended  atomic.Bool
	err    atomic.Pointer[error]
}

// Ensure Camera conforms to the session.Camera interface at compile time.
var _ session.Camera = (*Camera)(nil)

// New returns a Camera reading r.
func New(r io.Reader) *Camera {
	return &Camera{r: r, frames: make(chan session.Frame)}
}

func (c *Camera) Acquire(ctx context.Context, _ session.Constraints) (session.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}
	c.start.Do(func() { go c.read() })

	return &stream{frames: c.frames}, nil
}

// Exhausted reports whether every line has been handed out.
func (c *Camera) Exhausted() bool {
	return c.ended.Load()
}

// Err returns the read error that ended the input, if any.
func (c *Camera) Err() error {
	if err := c.err.Load(); err != nil {
		return *err
	}

	return nil
}

func (c *Camera) read() {
	defer func() {
		c.ended.Store(true)
		close(c.frames)
	}()

	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		c.frames <- session.Frame(strings.Clone(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		c.err.Store(&err)
	}
}

type stream struct {
	frames   <-chan session.Frame
	released atomic.Bool
}

func (s *stream) Frames() <-chan session.Frame {
	if s.released.Load() {
		return nil
	}

	return s.frames
}

func (s *stream) Release() {
	s.released.Store(true)
}

// Decoder parses the frames produced by Camera.
type Decoder struct{}

// Ensure Decoder conforms to the session.Decoder interface at compile time.
var _ session.Decoder = Decoder{}

func (Decoder) Decode(ctx context.Context, stream session.Stream) (domain.DecodedCode, error) {
	frames := stream.Frames()
	if frames == nil {
		return domain.DecodedCode{}, session.ErrStreamEnded
	}
	if err := ctx.Err(); err != nil {
		return domain.DecodedCode{}, err //nolint: wrapcheck
	}

	select {
	case <-ctx.Done():
		return domain.DecodedCode{}, ctx.Err() //nolint: wrapcheck
	case frame, ok := <-frames:
		if !ok {
			return domain.DecodedCode{}, session.ErrStreamEnded
		}

		return Parse(string(frame))
	}
}

// Parse reads one line. A leading token naming a known format sets the
// format; otherwise the whole line is a QR payload.
func Parse(line string) (domain.DecodedCode, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return domain.DecodedCode{}, session.ErrNotFound
	}

	head, rest, found := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	if found && rest != "" {
		if format := domain.ParseCodeFormat(head); format != domain.FormatUnknown ||
			strings.EqualFold(head, string(domain.FormatUnknown)) {
			return domain.DecodedCode{Payload: rest, Format: format}, nil
		}
	}

	return domain.DecodedCode{Payload: line, Format: domain.FormatQR}, nil
}
