package models

import (
	"time"

	"github.com/google/uuid"
)

// Offer types. A GEOGRAPHICAL offer is a location-gated "mystery" teaser and
// is never joined into normal package pricing.
const (
	OfferOneTime       = "ONE_TIME"
	OfferTimeDependent = "TIME_DEPENDENT"
	OfferGeographical  = "GEOGRAPHICAL"
)

// Offer is a promotional price override. Its relationship to a package is a
// non-owning reference by (PackageID, CarWashID): deleting the offer leaves
// the package untouched and vice versa. OfferPrice and RadiusMiles are
// decimal strings like package prices; StartTime/EndTime are UTC wall-clock
// "HH:mm" strings and only set for TIME_DEPENDENT offers.
type Offer struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	OfferType   string     `json:"offer_type" gorm:"not null;check:offer_type IN ('ONE_TIME', 'TIME_DEPENDENT', 'GEOGRAPHICAL');index"`
	OfferPrice  string     `json:"offer_price" gorm:"type:numeric(8,2);not null"`
	PackageID   uint       `json:"package_id" gorm:"not null;index:idx_offers_package"`
	CarWashID   uint       `json:"car_wash_id" gorm:"not null;index:idx_offers_package"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	RadiusMiles string     `json:"radius_miles" gorm:"type:numeric(6,2);default:0"`
	Image       string     `json:"image"`
	Status      string     `json:"status" gorm:"not null;default:'ACTIVE';index"`
	CreatedBy   *uuid.UUID `json:"created_by" gorm:"type:uuid"`
	UpdatedBy   *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// CarWashCode is a redeemable wash code sold through an offer. Codes are
// seeded per offer and handed out one per completed payment.
type CarWashCode struct {
	ID        uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	OfferID   uuid.UUID          `json:"offer_id" gorm:"type:uuid;not null;index"`
	Code      string             `json:"code" gorm:"not null"`
	Usages    []CarWashCodeUsage `json:"usages,omitempty" gorm:"foreignKey:CodeID"`
	CreatedAt time.Time          `json:"created_at" gorm:"autoCreateTime"`
}

type CarWashCodeUsage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CodeID    uuid.UUID `json:"code_id" gorm:"type:uuid;not null;index"`
	UserEmail string    `json:"user_email" gorm:"not null;index"`
	UsedAt    time.Time `json:"used_at"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
