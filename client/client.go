// Package client is the Go SDK for the WashBuddy API. It mirrors what the
// web frontend does: it keeps a FilterState in sync with a URL, fans out the
// carwash and offer fetches, joins offers into package prices, and polls
// payments until a wash code arrives.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zenapticlabs/washbuddy-backend/models"
)

const defaultHTTPTimeout = 15 * time.Second

// Client is a thin HTTP wrapper over the WashBuddy REST API. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// payment polling knobs, overridable in tests
	pollInterval time.Duration
	pollAttempts int
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: defaultHTTPTimeout},
		pollInterval: 2 * time.Second,
		pollAttempts: 15,
	}
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("POST %s: unexpected status %d: %s", path, resp.StatusCode, raw)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ListCarWashes fetches the filtered car wash list. The FilterState is
// serialized with the same wire format the URL synchronizer uses.
func (c *Client) ListCarWashes(ctx context.Context, f models.FilterState) (*models.CarWashListEnvelope, error) {
	var envelope models.CarWashListEnvelope
	if err := c.get(ctx, "/api/v1/carwash/list-car-wash", f.Values(), &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// SearchOffers fetches active offers around a point. The server has already
// applied the per-offer radius gate for geographical offers.
func (c *Client) SearchOffers(ctx context.Context, lat, lng float64) ([]models.Offer, error) {
	query := url.Values{}
	query.Set("userLat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("userLng", strconv.FormatFloat(lng, 'f', -1, 64))

	var offers []models.Offer
	if err := c.get(ctx, "/api/v1/carwash/offers/search", query, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CarWashDetail is the detail endpoint payload: the car wash with its
// packages already joined against active offers, plus review aggregates.
type CarWashDetail struct {
	CarWash        json.RawMessage        `json:"car_wash"`
	ReviewsSummary *models.ReviewsSummary `json:"reviews_summary"`
}

func (c *Client) GetCarWash(ctx context.Context, id uint) (*CarWashDetail, error) {
	var envelope apiEnvelope
	if err := c.get(ctx, fmt.Sprintf("/api/v1/carwash/%d", id), nil, &envelope); err != nil {
		return nil, err
	}

	var detail CarWashDetail
	if err := json.Unmarshal(envelope.Data, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreatePaymentIntent starts checkout for an offer and returns the Stripe
// client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, offerID string) (string, error) {
	var resp struct {
		ClientSecret string `json:"clientSecret"`
	}
	err := c.postJSON(ctx, "/api/v1/carwash/create-payment-intent", models.CreatePaymentIntentRequest{OfferID: offerID}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ClientSecret == "" {
		return "", fmt.Errorf("create payment intent: empty client secret")
	}
	return resp.ClientSecret, nil
}

// PaymentStatus fetches the current state of a payment intent.
func (c *Client) PaymentStatus(ctx context.Context, paymentIntentID string) (*models.PaymentStatusResponse, error) {
	var status models.PaymentStatusResponse
	if err := c.get(ctx, "/api/v1/carwash/payment-status/"+paymentIntentID, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
