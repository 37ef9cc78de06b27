package navigator_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/navigator"
	mocknavigator "github.com/ozvarsergen-rgb/qr-scanner-app/internal/navigator/mock"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"https://example.com":    "https://example.com",
		"  http://example.com  ": "http://example.com",
		"HTTPS://Example.com/a":  "HTTPS://Example.com/a",
		"www.example.com":        "https://www.example.com",
		"example.org/menu?x=1":   "https://example.org/menu?x=1",
	}
	for in, want := range cases {
		require.Equal(t, want, navigator.Normalize(in), in)
	}
}

func TestNavigate_assignFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocknavigator.NewMockBrowser(ctrl)
	b.EXPECT().Assign("https://example.com").Return(nil)

	require.Equal(t, navigator.ActionAssign, navigator.New(b).Navigate(context.Background(), "example.com"))
}

func TestNavigate_fallsBackToOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocknavigator.NewMockBrowser(ctrl)
	gomock.InOrder(
		b.EXPECT().Assign("https://example.com").Return(errors.New("blocked")),
		b.EXPECT().Open("https://example.com").Return(nil),
	)

	require.Equal(t, navigator.ActionOpen, navigator.New(b).Navigate(context.Background(), "https://example.com"))
}

func TestNavigate_reachesDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocknavigator.NewMockBrowser(ctrl)
	gomock.InOrder(
		b.EXPECT().Assign(gomock.Any()).DoAndReturn(func(string) error { panic("no window") }),
		b.EXPECT().Open(gomock.Any()).Return(errors.New("popup blocked")),
		b.EXPECT().Display("https://example.com").Return(nil),
	)

	require.Equal(t, navigator.ActionDisplay, navigator.New(b).Navigate(context.Background(), "https://example.com"))
}

func TestNavigate_allFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocknavigator.NewMockBrowser(ctrl)
	fail := errors.New("nope")
	b.EXPECT().Assign(gomock.Any()).Return(fail)
	b.EXPECT().Open(gomock.Any()).Return(fail)
	b.EXPECT().Display(gomock.Any()).Return(fail)

	require.Equal(t, navigator.ActionNone, navigator.New(b).Navigate(context.Background(), "x"))
}

func TestNavigate_nilBrowser(t *testing.T) {
	require.NotPanics(t, func() {
		require.Equal(t, navigator.ActionNone, navigator.New(nil).Navigate(context.Background(), "example.com"))
	})

	var e *navigator.Executor
	require.Equal(t, navigator.ActionNone, e.Navigate(context.Background(), "example.com"))
}

func TestOSBrowser(t *testing.T) {
	type call struct {
		name string
		args []string
	}
	var calls []call
	var out bytes.Buffer
	b := &navigator.OSBrowser{
		Out:  &out,
		GOOS: "linux",
		Run: func(name string, args ...string) error {
			calls = append(calls, call{name, args})
			if name == "broken" {
				return errors.New("exit 1")
			}

			return nil
		},
		Getenv: func(string) string { return "broken:firefox --new-tab" },
	}

	require.NoError(t, b.Assign("https://example.com"))
	require.NoError(t, b.Open("https://example.com"))
	require.NoError(t, b.Display("https://example.com"))
	require.Equal(t, []call{
		{"xdg-open", []string{"https://example.com"}},
		{"broken", []string{"https://example.com"}},
		{"firefox", []string{"--new-tab", "https://example.com"}},
	}, calls)
	require.Equal(t, "Open this link: https://example.com\n", out.String())

	b.GOOS = "plan9"
	require.ErrorIs(t, b.Assign("https://example.com"), navigator.ErrNoOpener)

	b.Getenv = func(string) string { return "" }
	require.Error(t, b.Open("https://example.com"))
}
