package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

func pollTestClient(serverURL string, attempts int) *Client {
	c := NewClient(serverURL)
	c.pollInterval = time.Millisecond
	c.pollAttempts = attempts
	return c
}

func TestWaitForPaymentCode_DeliversCodeOnceSettled(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		status := models.PaymentStatusResponse{Status: models.PaymentPending}
		if n >= 3 {
			status = models.PaymentStatusResponse{Status: models.PaymentCompleted, CarwashCode: "WB-1001"}
		}
		_ = json.NewEncoder(w).Encode(status)
	}))
	defer server.Close()

	code, err := pollTestClient(server.URL, 15).WaitForPaymentCode(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "WB-1001", code)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWaitForPaymentCode_FailureCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.PaymentStatusResponse{
			Status:       models.PaymentFailed,
			ErrorMessage: "Your card was declined",
		})
	}))
	defer server.Close()

	_, err := pollTestClient(server.URL, 15).WaitForPaymentCode(context.Background(), "pi_123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined")
}

func TestWaitForPaymentCode_GivesUpWhileStillPending(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(models.PaymentStatusResponse{Status: models.PaymentPending})
	}))
	defer server.Close()

	_, err := pollTestClient(server.URL, 4).WaitForPaymentCode(context.Background(), "pi_123")
	assert.ErrorIs(t, err, ErrPaymentPending)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls), "polling is capped")
}

func TestWaitForPaymentCode_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.PaymentStatusResponse{Status: models.PaymentPending})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.pollInterval = time.Hour // cancellation must interrupt the wait
	c.pollAttempts = 2

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.WaitForPaymentCode(ctx, "pi_123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
