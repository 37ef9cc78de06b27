package domain

import (
	"errors"
	"fmt"
)

// Phase is the coarse state of a scan session.
type Phase string

const (
	PhaseIdle      Phase = "IDLE"
	PhaseAcquiring Phase = "ACQUIRING"
	PhaseScanning  Phase = "SCANNING"
	PhaseResolving Phase = "RESOLVING"
	PhaseTerminal  Phase = "TERMINAL"
)

// SessionState is the state of one scan widget. Err is set only in PhaseTerminal.
type SessionState struct {
	Phase Phase        `json:"phase"`
	Err   *CameraError `json:"error,omitempty"`
}

// Busy reports whether the session owns (or is about to own) the camera or
// has a resolution in flight.
func (s SessionState) Busy() bool {
	return s.Phase == PhaseAcquiring || s.Phase == PhaseScanning || s.Phase == PhaseResolving
}

func (s SessionState) String() string {
	if s.Phase == PhaseTerminal && s.Err != nil {
		return fmt.Sprintf("%s(%s)", s.Phase, s.Err.Kind)
	}

	return string(s.Phase)
}

// CameraErrorKind categorizes camera acquisition failures.
type CameraErrorKind string

const (
	CameraPermissionDenied       CameraErrorKind = "PERMISSION_DENIED"
	CameraDeviceNotFound         CameraErrorKind = "DEVICE_NOT_FOUND"
	CameraDeviceBusy             CameraErrorKind = "DEVICE_BUSY"
	CameraConstraintsUnsupported CameraErrorKind = "CONSTRAINTS_UNSUPPORTED"
	CameraUnsupported            CameraErrorKind = "UNSUPPORTED"
	CameraUnknown                CameraErrorKind = "UNKNOWN"
)

// ErrInsecureContext marks an UNSUPPORTED camera error caused by the page not
// being served over a secure origin.
var ErrInsecureContext = errors.New("camera access requires a secure context")

// CameraError terminates a scan session and is shown to the user verbatim.
type CameraError struct {
	Kind  CameraErrorKind `json:"kind"`
	Cause error           `json:"-"`
}

func (e *CameraError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("camera error %s: %s", e.Kind, e.Cause.Error())
	}

	return "camera error " + string(e.Kind)
}

func (e *CameraError) Unwrap() error { return e.Cause }

// Message returns the user-facing explanation for the failure.
func (e *CameraError) Message() string {
	switch e.Kind {
	case CameraPermissionDenied:
		return "Camera permission was denied. Please allow camera access in your browser settings."
	case CameraDeviceNotFound:
		return "No camera was found. Please make sure a camera is connected."
	case CameraDeviceBusy:
		return "The camera is in use. Please close other applications using it."
	case CameraConstraintsUnsupported:
		return "The camera settings are not supported. Please try a different camera."
	case CameraUnsupported:
		if errors.Is(e.Cause, ErrInsecureContext) {
			return "Camera access requires HTTPS. Please use a secure connection."
		}

		return "This browser does not support camera access. Please use an up-to-date browser."
	default:
		if e.Cause != nil {
			return "Camera error: " + e.Cause.Error()
		}

		return "Could not access the camera. Please check your browser settings."
	}
}
