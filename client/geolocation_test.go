package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	calls   int
	errs    []error
	coords  Coordinates
	blockOn int // 1-based call index that blocks until the context expires
}

func (p *scriptedProvider) CurrentPosition(ctx context.Context) (Coordinates, error) {
	p.calls++
	if p.blockOn == p.calls {
		<-ctx.Done()
		return Coordinates{}, ctx.Err()
	}
	if p.calls <= len(p.errs) {
		return Coordinates{}, p.errs[p.calls-1]
	}
	return p.coords, nil
}

func fastGeoOptions() GeoOptions {
	return GeoOptions{
		MaxAttempts:    3,
		AttemptTimeout: 50 * time.Millisecond,
		RetryBackoff:   time.Millisecond,
	}
}

func TestAcquireLocation_RetriesTransientFailures(t *testing.T) {
	provider := &scriptedProvider{
		errs:   []error{ErrPositionUnavailable, ErrPositionUnavailable},
		coords: Coordinates{Lat: 41.9, Lng: -87.6},
	}

	retries := 0
	opts := fastGeoOptions()
	opts.OnRetry = func(attempt int, err error) {
		retries++
		assert.ErrorIs(t, err, ErrPositionUnavailable)
	}

	coords, err := AcquireLocation(context.Background(), provider, opts)
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lat: 41.9, Lng: -87.6}, coords)
	assert.Equal(t, 3, provider.calls)
	assert.Equal(t, 2, retries)
}

func TestAcquireLocation_PermissionDenialIsTerminal(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{ErrPermissionDenied},
	}

	_, err := AcquireLocation(context.Background(), provider, fastGeoOptions())
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, 1, provider.calls, "denial must not be retried")
}

func TestAcquireLocation_AttemptTimeoutCategorized(t *testing.T) {
	// the one and only attempt blocks past the attempt timeout
	provider := &scriptedProvider{blockOn: 1}

	opts := GeoOptions{
		MaxAttempts:    1,
		AttemptTimeout: 10 * time.Millisecond,
		RetryBackoff:   time.Millisecond,
	}
	_, err := AcquireLocation(context.Background(), provider, opts)
	assert.ErrorIs(t, err, ErrLocationTimeout)
}

func TestAcquireLocation_ExhaustionReturnsLastError(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{ErrPositionUnavailable, ErrPositionUnavailable, ErrPositionUnavailable},
	}

	_, err := AcquireLocation(context.Background(), provider, fastGeoOptions())
	assert.ErrorIs(t, err, ErrPositionUnavailable)
	assert.Equal(t, 3, provider.calls)
}

func TestAcquireLocation_UncategorizedErrorsBecomeUnavailable(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{assert.AnError, assert.AnError, assert.AnError},
	}

	_, err := AcquireLocation(context.Background(), provider, fastGeoOptions())
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}
