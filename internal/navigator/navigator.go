// Package navigator opens URLs found in scanned codes. It tries the least
// disruptive way first and falls back until one works.
package navigator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
)

// Action tells which capability handled a navigation.
type Action string

const (
	// ActionAssign means the URL replaced the current context in place.
	ActionAssign Action = "ASSIGN"
	// ActionOpen means the URL was opened in a new context.
	ActionOpen Action = "OPEN"
	// ActionDisplay means the URL was shown as inert text for the user to follow.
	ActionDisplay Action = "DISPLAY"
	// ActionNone means every capability failed.
	ActionNone Action = "NONE"
)

// Browser is the host capability used to navigate.
//
//go:generate mockgen -package mocknavigator -source=navigator.go -destination=mock/mocknavigator.go *
type Browser interface {
	// Assign navigates the current context to url.
	Assign(url string) error
	// Open navigates a new context to url.
	Open(url string) error
	// Display shows url to the user without navigating.
	Display(url string) error
}

// Normalize trims raw and prefixes https:// unless it already carries an
// http:// or https:// scheme (in any letter case).
func Normalize(raw string) string {
	u := strings.TrimSpace(raw)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}

	return "https://" + u
}

// Executor navigates through a Browser. It is safe for concurrent use when
// the Browser is.
type Executor struct {
	browser Browser
}

// New returns an Executor using browser.
func New(browser Browser) *Executor {
	return &Executor{browser: browser}
}

// Navigate normalizes raw and tries Assign, Open and Display in that order,
// stopping at the first that succeeds. Failures and panics of a capability
// are logged and the next one is tried. It returns the action that worked,
// or ActionNone.
func (e *Executor) Navigate(ctx context.Context, raw string) Action {
	url := Normalize(raw)
	ctx = logger.WithFields(ctx, zap.String("url", url))

	if e == nil || e.browser == nil {
		logger.Error(ctx, "could not navigate to url, no browser")

		return ActionNone
	}

	steps := []struct {
		action Action
		do     func(string) error
	}{
		{ActionAssign, e.browser.Assign},
		{ActionOpen, e.browser.Open},
		{ActionDisplay, e.browser.Display},
	}
	for _, step := range steps {
		err := try(step.do, url)
		if err == nil {
			logger.Debug(ctx, "navigated", zap.String("action", string(step.action)))

			return step.action
		}

		logger.Warn(ctx, "navigation capability failed",
			zap.String("action", string(step.action)), zap.Error(err))
	}

	logger.Error(ctx, "could not navigate to url")

	return ActionNone
}

func try(do func(string) error, url string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability panicked: %v", r)
		}
	}()

	return do(url)
}
