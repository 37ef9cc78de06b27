package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

func TestParseCodeFormat(t *testing.T) {
	for in, want := range map[string]domain.CodeFormat{
		"qr":         domain.FormatQR,
		"QR_CODE":    domain.FormatQR,
		"ean-13":     domain.FormatEAN13,
		" EAN13 ":    domain.FormatEAN13,
		"upc_a":      domain.FormatUPCA,
		"Code128":    domain.FormatCode128,
		"code_39":    domain.FormatCode39,
		"datamatrix": domain.FormatUnknown,
		"":           domain.FormatUnknown,
	} {
		require.Equal(t, want, domain.ParseCodeFormat(in), in)
	}
	require.False(t, domain.FormatQR.IsLinear())
	require.True(t, domain.FormatEAN13.IsLinear())
}

func TestAttempt_elapsedInMilliseconds(t *testing.T) {
	a := domain.Attempt{
		Provider:  "openfoodfacts",
		Outcome:   domain.AttemptFailed,
		ErrorKind: domain.ProviderErrorTimeout,
		Error:     "slow",
		Elapsed:   1500 * time.Millisecond,
	}

	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"provider":"openfoodfacts","outcome":"FAILED","errorKind":"TIMEOUT","error":"slow","elapsedMs":1500}`,
		string(b))

	var back domain.Attempt
	require.NoError(t, json.Unmarshal([]byte(`{"provider":"p","outcome":"EMPTY","elapsedMs":42}`), &back))
	require.Equal(t, domain.Attempt{Provider: "p", Outcome: domain.AttemptEmpty, Elapsed: 42 * time.Millisecond}, back)

	// attempts nested in an outcome use the same shape
	b, err = json.Marshal(domain.LookupOutcome{Code: "1", Attempts: []domain.Attempt{a}})
	require.NoError(t, err)
	require.Contains(t, string(b), `"elapsedMs":1500`)
	require.NotContains(t, string(b), `"elapsed":`)
}

func TestLookupOutcome(t *testing.T) {
	failed := domain.Attempt{Provider: "a", Outcome: domain.AttemptFailed}
	empty := domain.Attempt{Provider: "b", Outcome: domain.AttemptEmpty}

	none := domain.LookupOutcome{}
	require.False(t, none.Found())
	require.False(t, none.AllFailed())

	errored := domain.LookupOutcome{Attempts: []domain.Attempt{failed, failed}}
	require.False(t, errored.Found())
	require.True(t, errored.AllFailed())

	notFound := domain.LookupOutcome{Attempts: []domain.Attempt{failed, empty}}
	require.False(t, notFound.AllFailed())

	found := domain.LookupOutcome{
		Record:   &domain.ProductRecord{Source: "b"},
		Attempts: []domain.Attempt{failed, {Provider: "b", Outcome: domain.AttemptSuccess}},
	}
	require.True(t, found.Found())
	require.False(t, found.AllFailed())
}

func TestCameraError(t *testing.T) {
	cause := errors.New("NotAllowedError")
	err := &domain.CameraError{Kind: domain.CameraPermissionDenied, Cause: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "PERMISSION_DENIED")
	require.Contains(t, err.Message(), "permission was denied")

	insecure := &domain.CameraError{Kind: domain.CameraUnsupported, Cause: domain.ErrInsecureContext}
	require.Contains(t, insecure.Message(), "HTTPS")
	unsupported := &domain.CameraError{Kind: domain.CameraUnsupported}
	require.Contains(t, unsupported.Message(), "does not support")

	unknown := &domain.CameraError{Kind: domain.CameraUnknown, Cause: errors.New("boom")}
	require.Equal(t, "Camera error: boom", unknown.Message())

	for _, k := range []domain.CameraErrorKind{
		domain.CameraPermissionDenied, domain.CameraDeviceNotFound, domain.CameraDeviceBusy,
		domain.CameraConstraintsUnsupported, domain.CameraUnsupported, domain.CameraUnknown,
	} {
		require.NotEmpty(t, (&domain.CameraError{Kind: k}).Message(), k)
	}
}

func TestSessionState(t *testing.T) {
	require.False(t, domain.SessionState{Phase: domain.PhaseIdle}.Busy())
	require.True(t, domain.SessionState{Phase: domain.PhaseAcquiring}.Busy())
	require.True(t, domain.SessionState{Phase: domain.PhaseScanning}.Busy())
	require.True(t, domain.SessionState{Phase: domain.PhaseResolving}.Busy())
	require.False(t, domain.SessionState{Phase: domain.PhaseTerminal}.Busy())

	terminal := domain.SessionState{
		Phase: domain.PhaseTerminal,
		Err:   &domain.CameraError{Kind: domain.CameraDeviceBusy},
	}
	require.Equal(t, "TERMINAL(DEVICE_BUSY)", terminal.String())
	require.Equal(t, "SCANNING", domain.SessionState{Phase: domain.PhaseScanning}.String())
}

func TestIDs_text(t *testing.T) {
	raw := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	id, err := domain.ParseLookupID(raw)
	require.NoError(t, err)
	require.Equal(t, raw, id.String())

	b, err := json.Marshal(struct {
		ID   domain.LookupID `json:"id"`
		User domain.UserID   `json:"user"`
	}{ID: id, User: domain.UserID(id)})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"`+raw+`","user":"`+raw+`"}`, string(b))

	var back domain.LookupID
	require.NoError(t, back.UnmarshalText([]byte(raw)))
	require.Equal(t, id, back)

	_, err = domain.ParseLookupID("nope")
	require.Error(t, err)
}
