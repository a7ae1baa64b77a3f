package models

import (
	"time"

	"github.com/google/uuid"
)

// Car wash categories. A car wash can be both: the two flags are independent.
const (
	CategoryAutomatic   = "automatic"
	CategorySelfService = "selfservice"
)

// Image types accepted for car wash photos.
var ImageTypes = []string{"Menu", "Station", "Exterior", "Interior"}

type CarWash struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	CarWashName        string     `json:"car_wash_name" gorm:"not null;index"`
	Street             string     `json:"street"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	StateCode          *string    `json:"state_code"`
	PostalCode         string     `json:"postal_code"`
	Country            string     `json:"country"`
	CountryCode        string     `json:"country_code"`
	FormattedAddress   string     `json:"formatted_address"`
	Phone              *string    `json:"phone"`
	Website            *string    `json:"website"`
	Email              *string    `json:"email"`
	Latitude           float64    `json:"latitude" gorm:"type:numeric(10,8);not null;index:idx_car_washes_lat_lng"`
	Longitude          float64    `json:"longitude" gorm:"type:numeric(11,8);not null;index:idx_car_washes_lat_lng"`
	AutomaticCarWash   bool       `json:"automatic_car_wash" gorm:"not null;default:false;index"`
	SelfServiceCarWash bool       `json:"self_service_car_wash" gorm:"not null;default:false;index"`
	Open24Hours        bool       `json:"open_24_hours" gorm:"not null;default:false"`
	Verified           bool       `json:"verified" gorm:"not null;default:false"`
	ImageURL           string     `json:"image_url"`
	ReviewsCount       int        `json:"reviews_count" gorm:"not null;default:0"`
	ReviewsAverage     string     `json:"reviews_average" gorm:"type:numeric(3,2);not null;default:0"`
	Status             string     `json:"status" gorm:"not null;default:'ACTIVE';index"`
	CreatedBy          *uuid.UUID `json:"created_by" gorm:"type:uuid"`
	UpdatedBy          *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	OperatingHours []CarWashOperatingHours `json:"operating_hours" gorm:"foreignKey:CarWashID;constraint:OnDelete:CASCADE"`
	Images         []CarWashImage          `json:"images" gorm:"foreignKey:CarWashID;constraint:OnDelete:CASCADE"`
	Packages       []CarWashPackage        `json:"packages" gorm:"foreignKey:CarWashID;constraint:OnDelete:CASCADE"`
	WashTypes      []WashType              `json:"wash_types" gorm:"many2many:car_wash_wash_types"`
	Amenities      []Amenity               `json:"amenities" gorm:"many2many:car_wash_amenities"`

	// Haversine miles from the searcher's position, selected as a query alias.
	Distance float64 `json:"distance" gorm:"->;-:migration"`
}

type CarWashOperatingHours struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CarWashID   uint      `json:"car_wash" gorm:"not null;uniqueIndex:idx_operating_hours_dow"`
	DayOfWeek   int       `json:"day_of_week" gorm:"not null;uniqueIndex:idx_operating_hours_dow;check:day_of_week >= 0 AND day_of_week <= 6"`
	IsClosed    bool      `json:"is_closed" gorm:"not null;default:false"`
	OpeningTime *string   `json:"opening_time"`
	ClosingTime *string   `json:"closing_time"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type CarWashImage struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CarWashID uint       `json:"car_wash" gorm:"not null;index"`
	ImageType string     `json:"image_type" gorm:"not null"`
	ImageURL  string     `json:"image_url" gorm:"not null"`
	CreatedBy *uuid.UUID `json:"created_by" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// CarWashPackage is a purchasable service tier. It is owned by its car wash
// and never exists independently. Price is kept as a decimal string end to
// end so display values never pick up float drift; Minutes is set for
// per-minute self-service pricing only.
type CarWashPackage struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CarWashID uint       `json:"car_wash" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	Category  string     `json:"category" gorm:"not null;check:category IN ('automatic', 'selfservice')"`
	Price     string     `json:"price" gorm:"type:numeric(8,2);not null"`
	Minutes   *int       `json:"minutes,omitempty"`
	WashTypes []WashType `json:"wash_types" gorm:"many2many:car_wash_package_wash_types"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// CarWashListEnvelope is the paginated response of the list endpoint. The
// links shape is part of the public contract consumed by the dashboard.
type CarWashListEnvelope struct {
	Count   int       `json:"count"`
	Links   PageLinks `json:"links"`
	Results []CarWash `json:"results"`
}

type PageLinks struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}
