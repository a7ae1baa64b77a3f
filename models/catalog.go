package models

import "time"

// WashType is one entry of the wash-type catalog (e.g. Touchless, Soft
// Touch). Category matches the car wash category constants; Subclass groups
// types inside a category.
type WashType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Category  string    `json:"category" gorm:"not null;index"`
	Subclass  string    `json:"subclass"`
	Icon      string    `json:"icon"`
	Status    string    `json:"status" gorm:"not null;default:'ACTIVE'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Amenity is one entry of the amenity catalog (e.g. Vacuum, Air Pump).
type Amenity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon"`
	Status    string    `json:"status" gorm:"not null;default:'ACTIVE'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
