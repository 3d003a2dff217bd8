package geo

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProvider struct {
	pos   Coordinate
	err   error
	delay time.Duration
}

func (p *stubProvider) Locate(ctx context.Context) (Coordinate, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return Coordinate{}, ctx.Err()
		}
	}
	if p.err != nil {
		return Coordinate{}, p.err
	}
	return p.pos, nil
}

func TestLocator_Current(t *testing.T) {
	want := Coordinate{Lat: 19.4326, Lng: -99.1332}
	loc := NewLocator(&stubProvider{pos: want}, time.Second)

	got, err := loc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected position: %+v", got)
	}
}

func TestLocator_NoProvider(t *testing.T) {
	loc := NewLocator(nil, time.Second)

	if _, err := loc.Current(context.Background()); !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
}

func TestLocator_Timeout(t *testing.T) {
	loc := NewLocator(&stubProvider{delay: 200 * time.Millisecond}, 20*time.Millisecond)

	_, err := loc.Current(context.Background())
	var le *LocationError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LocationError, got %v", err)
	}
	if le.Code != CodeTimeout {
		t.Fatalf("expected timeout code %d, got %d", CodeTimeout, le.Code)
	}
}

func TestLocator_ProviderError(t *testing.T) {
	cause := errors.New("gps hardware fault")
	loc := NewLocator(&stubProvider{err: cause}, time.Second)

	_, err := loc.Current(context.Background())
	var le *LocationError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LocationError, got %v", err)
	}
	if le.Code != CodePositionUnavailable {
		t.Fatalf("expected code %d, got %d", CodePositionUnavailable, le.Code)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be preserved")
	}
}

func TestLocator_PermissionDeniedPassthrough(t *testing.T) {
	denied := &LocationError{Code: CodePermissionDenied, Err: errors.New("user denied geolocation")}
	loc := NewLocator(&stubProvider{err: denied}, time.Second)

	_, err := loc.Current(context.Background())
	var le *LocationError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LocationError, got %v", err)
	}
	if le.Code != CodePermissionDenied {
		t.Fatalf("expected code %d, got %d", CodePermissionDenied, le.Code)
	}
}
