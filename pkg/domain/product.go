package domain

import (
	"encoding/json"
	"time"
)

// ProductRecord is the normalized description of a product returned by a
// lookup provider. Fields the upstream did not supply are nil and serialize
// as JSON null. Source always holds the name of the provider that produced it.
type ProductRecord struct {
	Name     *string `json:"name"`
	Brand    *string `json:"brand"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
	Source   string  `json:"source"`
}

// AttemptOutcome is the result of asking a single provider.
type AttemptOutcome string

const (
	// AttemptSuccess means the provider returned a record; resolution stops here.
	AttemptSuccess AttemptOutcome = "SUCCESS"
	// AttemptEmpty means the provider answered but does not know the code.
	AttemptEmpty AttemptOutcome = "EMPTY"
	// AttemptFailed means the provider errored or ran out of time.
	AttemptFailed AttemptOutcome = "FAILED"
)

// ProviderErrorKind categorizes why a provider attempt failed.
type ProviderErrorKind string

const (
	ProviderErrorTimeout           ProviderErrorKind = "TIMEOUT"
	ProviderErrorNetwork           ProviderErrorKind = "NETWORK"
	ProviderErrorMalformedResponse ProviderErrorKind = "MALFORMED_RESPONSE"
)

// Attempt records one provider call made while resolving a code. Elapsed is
// serialized as whole milliseconds under "elapsedMs".
type Attempt struct {
	Provider  string            `json:"provider"`
	Outcome   AttemptOutcome    `json:"outcome"`
	ErrorKind ProviderErrorKind `json:"errorKind,omitempty"`
	Error     string            `json:"error,omitempty"`
	Elapsed   time.Duration     `json:"-"`
}

type attemptJSON struct {
	attempt

	ElapsedMs int64 `json:"elapsedMs"`
}

// attempt drops the methods of Attempt so encoding does not recurse.
type attempt Attempt

func (a Attempt) MarshalJSON() ([]byte, error) {
	return json.Marshal(attemptJSON{attempt: attempt(a), ElapsedMs: a.Elapsed.Milliseconds()}) //nolint: wrapcheck
}

func (a *Attempt) UnmarshalJSON(b []byte) error {
	var v attemptJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err //nolint: wrapcheck
	}
	*a = Attempt(v.attempt)
	a.Elapsed = time.Duration(v.ElapsedMs) * time.Millisecond

	return nil
}

// LookupOutcome describes everything that was tried for a code, in the order
// it was tried, plus the record of the first provider that knew the code.
type LookupOutcome struct {
	Code     string         `json:"code"`
	Record   *ProductRecord `json:"record"`
	Attempts []Attempt      `json:"attempts"`
}

// Found reports whether any provider produced a record.
func (o LookupOutcome) Found() bool {
	return o.Record != nil
}

// AllFailed reports whether every attempted provider errored. An outcome with
// no record that is not AllFailed means "no data found" rather than "lookup
// errored".
func (o LookupOutcome) AllFailed() bool {
	if len(o.Attempts) == 0 {
		return false
	}
	for _, a := range o.Attempts {
		if a.Outcome != AttemptFailed {
			return false
		}
	}

	return true
}
