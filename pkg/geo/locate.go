package geo

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultLocateTimeout bounds a single location fix. There is no retry and no
// cached fallback: every call requests a fresh fix.
const DefaultLocateTimeout = 5 * time.Second

// Error codes mirror the W3C geolocation PositionError codes so callers can
// surface the underlying cause.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// ErrLocationUnavailable is returned when no location provider is configured.
var ErrLocationUnavailable = errors.New("location provider unavailable")

// LocationError wraps a provider failure with its cause code.
type LocationError struct {
	Code int
	Err  error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("location error (code %d): %v", e.Code, e.Err)
}

func (e *LocationError) Unwrap() error { return e.Err }

// Provider is the platform location source (device GPS, browser geolocation
// relayed by the client, an IP lookup service, ...).
type Provider interface {
	Locate(ctx context.Context) (Coordinate, error)
}

// Locator acquires the current position from a Provider, enforcing a single
// bounded attempt per call.
type Locator struct {
	provider Provider
	timeout  time.Duration
}

// NewLocator wraps provider with the given timeout. A non-positive timeout
// falls back to DefaultLocateTimeout.
func NewLocator(provider Provider, timeout time.Duration) *Locator {
	if timeout <= 0 {
		timeout = DefaultLocateTimeout
	}
	return &Locator{provider: provider, timeout: timeout}
}

// Current resolves the device's current coordinate. It fails with
// ErrLocationUnavailable when no provider is configured, and with a
// *LocationError on provider failure or timeout.
func (l *Locator) Current(ctx context.Context) (Coordinate, error) {
	if l.provider == nil {
		return Coordinate{}, ErrLocationUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	pos, err := l.provider.Locate(ctx)
	if err != nil {
		var le *LocationError
		if errors.As(err, &le) {
			return Coordinate{}, le
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return Coordinate{}, &LocationError{Code: CodeTimeout, Err: err}
		}
		return Coordinate{}, &LocationError{Code: CodePositionUnavailable, Err: err}
	}
	return pos, nil
}
