package session

import (
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/classifier"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/navigator"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// EventType tells which fields of an Event are set.
type EventType string

const (
	// EventStateChanged carries State.
	EventStateChanged EventType = "STATE_CHANGED"
	// EventDecoded carries Code.
	EventDecoded EventType = "DECODED"
	// EventClassified carries Code, Kind and Details.
	EventClassified EventType = "CLASSIFIED"
	// EventResolved carries Code and Outcome.
	EventResolved EventType = "RESOLVED"
	// EventNavigated carries Action and URL.
	EventNavigated EventType = "NAVIGATED"
	// EventCameraFailed carries CameraError and Message.
	EventCameraFailed EventType = "CAMERA_FAILED"
)

// Event is emitted to the Sink as the session makes progress.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`

	State       domain.SessionState   `json:"state"`
	Code        *domain.DecodedCode   `json:"code,omitempty"`
	Kind        domain.ContentKind    `json:"kind,omitempty"`
	Details     *classifier.Details   `json:"details,omitempty"`
	Outcome     *domain.LookupOutcome `json:"outcome,omitempty"`
	Action      navigator.Action      `json:"action,omitempty"`
	URL         string                `json:"url,omitempty"`
	CameraError *domain.CameraError   `json:"cameraError,omitempty"`
	Message     string                `json:"message,omitempty"`
}
