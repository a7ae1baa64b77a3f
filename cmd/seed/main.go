package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the catalog tables and a demo car wash with an offer.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("WASHBUDDY - Catalog & Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := models.AutoMigrate(config.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedWashTypes()
	seedAmenities()
	seedDemoCarWash()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding complete")
	fmt.Println("════════════════════════════════════════════════════════════")
}

func seedWashTypes() {
	washTypes := []models.WashType{
		{Name: "Touchless", Category: models.CategoryAutomatic, Subclass: "Standard"},
		{Name: "Soft Touch", Category: models.CategoryAutomatic, Subclass: "Standard"},
		{Name: "Hand Wash", Category: models.CategoryAutomatic, Subclass: "Premium"},
		{Name: "Wax & Shine", Category: models.CategoryAutomatic, Subclass: "Premium"},
		{Name: "Undercarriage Wash", Category: models.CategoryAutomatic, Subclass: "Add-on"},
		{Name: "Tire Shine", Category: models.CategoryAutomatic, Subclass: "Add-on"},
		{Name: "Pressure Washer", Category: models.CategorySelfService, Subclass: "Standard"},
		{Name: "Foam Brush", Category: models.CategorySelfService, Subclass: "Standard"},
		{Name: "Spot-Free Rinse", Category: models.CategorySelfService, Subclass: "Standard"},
		{Name: "Vacuum Station", Category: models.CategorySelfService, Subclass: "Add-on"},
	}

	for _, wt := range washTypes {
		wt.Status = "ACTIVE"
		result := config.DB.Where("name = ?", wt.Name).FirstOrCreate(&wt)
		if result.Error != nil {
			log.Fatalf("Failed to seed wash type %q: %v", wt.Name, result.Error)
		}
	}
	log.Printf("✓ Seeded %d wash types", len(washTypes))
}

func seedAmenities() {
	amenities := []string{
		"Free Vacuums",
		"Air Machine",
		"Mat Cleaner",
		"Open 24 Hours",
		"Credit Cards Accepted",
		"Waiting Area",
		"Restrooms",
	}

	for _, name := range amenities {
		amenity := models.Amenity{Name: name, Status: "ACTIVE"}
		result := config.DB.Where("name = ?", name).FirstOrCreate(&amenity)
		if result.Error != nil {
			log.Fatalf("Failed to seed amenity %q: %v", name, result.Error)
		}
	}
	log.Printf("✓ Seeded %d amenities", len(amenities))
}

func seedDemoCarWash() {
	var existing models.CarWash
	err := config.DB.Where("car_wash_name = ?", "Sparkle Auto Spa").First(&existing).Error
	if err == nil {
		log.Println("✓ Demo car wash already present, skipping")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	carWash := models.CarWash{
		CarWashName:      "Sparkle Auto Spa",
		Street:           "4200 N Lincoln Ave",
		City:             "Chicago",
		State:            "Illinois",
		PostalCode:       "60618",
		Country:          "United States",
		CountryCode:      "US",
		FormattedAddress: "4200 N Lincoln Ave, Chicago, IL 60618",
		Latitude:         41.9581,
		Longitude:        -87.6835,
		AutomaticCarWash: true,
		Open24Hours:      false,
		Verified:         true,
		ReviewsAverage:   "4.50",
		ReviewsCount:     12,
		Status:           "ACTIVE",
	}
	if err := config.DB.Create(&carWash).Error; err != nil {
		log.Fatalf("Failed to create demo car wash: %v", err)
	}

	hours := []models.CarWashOperatingHours{}
	opening, closing := "08:00", "20:00"
	for day := 0; day <= 6; day++ {
		hours = append(hours, models.CarWashOperatingHours{
			CarWashID:   carWash.ID,
			DayOfWeek:   day,
			OpeningTime: &opening,
			ClosingTime: &closing,
		})
	}
	if err := config.DB.Create(&hours).Error; err != nil {
		log.Fatalf("Failed to create operating hours: %v", err)
	}

	packages := []models.CarWashPackage{
		{CarWashID: carWash.ID, Name: "Basic", Category: models.CategoryAutomatic, Price: "10.00"},
		{CarWashID: carWash.ID, Name: "Deluxe", Category: models.CategoryAutomatic, Price: "16.00"},
		{CarWashID: carWash.ID, Name: "Works", Category: models.CategoryAutomatic, Price: "24.00"},
	}
	if err := config.DB.Create(&packages).Error; err != nil {
		log.Fatalf("Failed to create packages: %v", err)
	}

	offer := models.Offer{
		ID:          uuid.New(),
		Name:        "Morning Deluxe Deal",
		Description: "Deluxe wash at a discount before the lunch rush",
		OfferType:   models.OfferTimeDependent,
		OfferPrice:  "12.00",
		PackageID:   packages[1].ID,
		CarWashID:   carWash.ID,
		StartTime:   "08:00",
		EndTime:     "11:00",
		Status:      "ACTIVE",
	}
	if err := config.DB.Create(&offer).Error; err != nil {
		log.Fatalf("Failed to create offer: %v", err)
	}

	codes := []string{"WB-1001", "WB-1002", "WB-1003", "WB-1004", "WB-1005"}
	for _, code := range codes {
		washCode := models.CarWashCode{
			ID:      uuid.New(),
			OfferID: offer.ID,
			Code:    code,
		}
		if err := config.DB.Create(&washCode).Error; err != nil {
			log.Fatalf("Failed to create wash code: %v", err)
		}
	}

	log.Printf("✓ Seeded demo car wash %q with %d packages and %d wash codes",
		carWash.CarWashName, len(packages), len(codes))
}
