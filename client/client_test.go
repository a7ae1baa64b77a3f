package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

func TestListCarWashes_SendsFilterWireFormat(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeListResponse(w, 0, nil)
	}))
	defer server.Close()

	f := models.DefaultFilterState()
	f.WashTypeName = []string{"Touchless", "Soft Touch"}
	f.Ratings = []int{4, 5}
	f.SelfServiceCarWash = true

	_, err := NewClient(server.URL).ListCarWashes(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "true", got.Get("automaticCarWash"))
	assert.Equal(t, "true", got.Get("selfServiceCarWash"))
	assert.Equal(t, []string{"Touchless", "Soft Touch"}, got["washTypeName"], "array filters repeat the key")
	assert.Equal(t, []string{"4", "5"}, got["ratings"])
	assert.Equal(t, "3", got.Get("distance"))
	assert.Equal(t, "30", got.Get("page_size"))
	assert.Equal(t, "1", got.Get("page"))
}

func TestCreatePaymentIntent_ReturnsClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CreatePaymentIntentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "offer-123", req.OfferID)
		_ = json.NewEncoder(w).Encode(map[string]string{"clientSecret": "pi_123_secret_abc"})
	}))
	defer server.Close()

	secret, err := NewClient(server.URL).CreatePaymentIntent(context.Background(), "offer-123")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
}

func TestPaymentStatus_DecodesRawContract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/carwash/payment-status/pi_42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.PaymentStatusResponse{
			Status:      models.PaymentCompleted,
			CarwashCode: "WB-1002",
		})
	}))
	defer server.Close()

	status, err := NewClient(server.URL).PaymentStatus(context.Background(), "pi_42")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, status.Status)
	assert.Equal(t, "WB-1002", status.CarwashCode)
}

func TestListCarWashes_ErrorOnServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListCarWashes(context.Background(), models.DefaultFilterState())
	assert.Error(t, err)
}
