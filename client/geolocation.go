package client

import (
	"context"
	"errors"
	"time"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64
	Lng float64
}

// LocationProvider abstracts wherever a position comes from: a browser
// bridge, a mobile OS API, or a fixed test value.
type LocationProvider interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// Location acquisition errors, categorized so callers can message the user
// correctly: denial needs a settings prompt, unavailability a retry, and a
// timeout a "still looking" state.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrLocationTimeout     = errors.New("location request timed out")
)

// GeoOptions tunes AcquireLocation. Zero values fall back to the defaults.
type GeoOptions struct {
	MaxAttempts    int           // default 3
	AttemptTimeout time.Duration // default 10s
	RetryBackoff   time.Duration // default 1s
	OnRetry        func(attempt int, err error)
}

func (o GeoOptions) withDefaults() GeoOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.AttemptTimeout <= 0 {
		o.AttemptTimeout = 10 * time.Second
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = time.Second
	}
	return o
}

// AcquireLocation asks the provider for a position, retrying transient
// failures with a fixed backoff. Permission denial is terminal: the user
// said no, asking again immediately would only annoy them. The returned
// error is always one of the categorized sentinels (possibly wrapped) or
// the context's error.
func AcquireLocation(ctx context.Context, provider LocationProvider, opts GeoOptions) (Coordinates, error) {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, opts.AttemptTimeout)
		coords, err := provider.CurrentPosition(attemptCtx)
		cancel()

		if err == nil {
			return coords, nil
		}

		lastErr = categorizeLocationError(err)
		if errors.Is(lastErr, ErrPermissionDenied) {
			return Coordinates{}, lastErr
		}
		if ctx.Err() != nil {
			return Coordinates{}, ctx.Err()
		}

		if attempt < opts.MaxAttempts {
			if opts.OnRetry != nil {
				opts.OnRetry(attempt, lastErr)
			}
			select {
			case <-time.After(opts.RetryBackoff):
			case <-ctx.Done():
				return Coordinates{}, ctx.Err()
			}
		}
	}

	return Coordinates{}, lastErr
}

func categorizeLocationError(err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrPositionUnavailable),
		errors.Is(err, ErrLocationTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return ErrLocationTimeout
	default:
		return ErrPositionUnavailable
	}
}
