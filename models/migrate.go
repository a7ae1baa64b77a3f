package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every persisted model.
// Order matters for foreign keys: catalogs and users first, then car
// washes, then everything hanging off them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&WashType{},
		&Amenity{},
		&User{},
		&CarWash{},
		&CarWashOperatingHours{},
		&CarWashImage{},
		&CarWashPackage{},
		&Offer{},
		&CarWashCode{},
		&CarWashCodeUsage{},
		&Payment{},
		&Review{},
	)
}
