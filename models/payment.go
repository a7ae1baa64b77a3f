package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payment statuses as exposed by the payment-status endpoint.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment tracks one Stripe payment intent from creation through the webhook
// that settles it. Metadata carries the purchaser details the webhook needs
// to pick an unused wash code.
type Payment struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	PaymentIntentID string         `json:"payment_intent_id" gorm:"not null;uniqueIndex"`
	OfferID         uuid.UUID      `json:"offer_id" gorm:"type:uuid;not null;index"`
	UserID          *uuid.UUID     `json:"user_id" gorm:"type:uuid;index"`
	Amount          string         `json:"amount" gorm:"type:numeric(8,2);not null"`
	Status          string         `json:"status" gorm:"not null;default:'pending';check:status IN ('pending', 'completed', 'failed')"`
	CarWashCodeID   *uuid.UUID     `json:"carwash_code_id" gorm:"type:uuid"`
	ErrorMessage    *string        `json:"error_message"`
	Metadata        datatypes.JSON `json:"metadata" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// PaymentStatusResponse is the polled payment-status contract.
type PaymentStatusResponse struct {
	Status       string `json:"status"`
	CarwashCode  string `json:"carwash_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// CreatePaymentIntentRequest is the checkout entrypoint payload.
type CreatePaymentIntentRequest struct {
	OfferID string `json:"offer_id" binding:"required"`
}

// PurchaseHistoryItem is one row of the purchase-history table.
type PurchaseHistoryItem struct {
	ID           uuid.UUID `json:"id"`
	CarWashName  string    `json:"car_wash_name"`
	OfferName    string    `json:"offer_name"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	WashCode     string    `json:"wash_code,omitempty"`
	PurchaseDate time.Time `json:"purchase_date"`
}
