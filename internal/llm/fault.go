package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// FaultKind classifies provider failures
type FaultKind string

const (
	// FaultRateLimited is a provider rate-limit signal (explicit rate-limit code)
	FaultRateLimited FaultKind = "rate_limited"
	// FaultCapacityExceeded is a generic "too many requests" status without the rate-limit code
	FaultCapacityExceeded FaultKind = "capacity_exceeded"
	// FaultTransient covers server-side errors, timeouts and transport failures
	FaultTransient FaultKind = "transient"
	// FaultUnknown is anything else
	FaultUnknown FaultKind = "unknown"
)

// Fault is the typed failure every Provider returns
type Fault struct {
	Kind     FaultKind
	Provider string
	Status   int    // HTTP status reported by the provider, 0 if none
	Code     string // Provider error code, empty if none
	Err      error  // Underlying SDK error, for server-side logs only
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s provider fault (%s", f.Provider, f.Kind)
	if f.Status != 0 {
		msg += fmt.Sprintf(", status %d", f.Status)
	}
	if f.Code != "" {
		msg += ", code " + f.Code
	}
	msg += ")"
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// IsRateLimit reports whether the fault is a true rate-limit condition
func (f *Fault) IsRateLimit() bool {
	return f.Kind == FaultRateLimited
}

// AsFault extracts a *Fault from err
func AsFault(err error) (*Fault, bool) {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault, true
	}
	return nil, false
}

// transportFault classifies errors that carry no provider status
func transportFault(provider string, err error) *Fault {
	kind := FaultUnknown
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = FaultTransient
	}
	return &Fault{Kind: kind, Provider: provider, Err: err}
}

// statusKind maps an HTTP status onto a fault kind when no explicit
// rate-limit code is present.
func statusKind(status int) FaultKind {
	switch {
	case status == http.StatusTooManyRequests:
		return FaultCapacityExceeded
	case status >= http.StatusInternalServerError:
		return FaultTransient
	default:
		return FaultUnknown
	}
}
