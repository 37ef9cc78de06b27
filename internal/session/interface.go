// Package session drives one scan widget: it acquires a camera, decodes
// frames until a code shows up, classifies the payload and then navigates
// or resolves it.
package session

import (
	"context"
	"errors"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/navigator"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// ErrNotFound is returned by a Decoder when a frame carries no readable code.
var ErrNotFound = errors.New("no code found in frame")

// ErrStreamEnded is returned by a Decoder when the stream has no more frames.
var ErrStreamEnded = errors.New("stream ended")

// Camera acquisition failures. Cameras return these (possibly wrapped) so
// the session can report the matching CameraError kind.
var (
	ErrPermissionDenied       = errors.New("camera permission denied")
	ErrDeviceNotFound         = errors.New("camera device not found")
	ErrDeviceBusy             = errors.New("camera device busy")
	ErrConstraintsUnsupported = errors.New("camera constraints unsupported")
	ErrUnsupported            = errors.New("camera access unsupported")
)

// Frame is one captured image in whatever encoding the Decoder understands.
type Frame []byte

// Constraints select the camera to acquire.
type Constraints struct {
	// FacingMode is "environment" for the rear camera or "user" for the front one.
	FacingMode string
}

// Camera hands out streams.
//
//go:generate mockgen -package mocksession -source=interface.go -destination=mock/mocksession.go *
type Camera interface {
	// Acquire opens a stream. It must give up when ctx is done.
	Acquire(ctx context.Context, constraints Constraints) (Stream, error)
}

// Stream is an acquired camera feed.
type Stream interface {
	// Frames yields captured frames and is closed when the feed ends.
	Frames() <-chan Frame
	// Release stops the feed and frees the device.
	Release()
}

// Decoder extracts a code from the next frame of a stream. It returns
// ErrNotFound for frames without a code and ErrStreamEnded once the stream
// is exhausted. Calling it again continues with the following frame.
type Decoder interface {
	Decode(ctx context.Context, stream Stream) (domain.DecodedCode, error)
}

// Environment reports host capabilities checked before acquiring a camera.
type Environment interface {
	// Supported reports whether the host can stream from a camera at all.
	Supported() bool
	// SecureContext reports whether the host allows camera access from here.
	SecureContext() bool
}

// Navigator opens URL payloads.
type Navigator interface {
	Navigate(ctx context.Context, raw string) navigator.Action
}

// Sink receives session events. Emit is called synchronously from the
// session and must not call back into it.
type Sink interface {
	Emit(event Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(event Event)

func (f SinkFunc) Emit(event Event) { f(event) }
