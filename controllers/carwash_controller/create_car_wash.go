package carwash_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"gorm.io/gorm"
)

// PointsForListing is awarded when a signed-in user adds a car wash.
const PointsForListing = 25

type operatingHoursInput struct {
	DayOfWeek   int     `json:"day_of_week" binding:"min=0,max=6"`
	IsClosed    bool    `json:"is_closed"`
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
}

type packageInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=automatic selfservice"`
	Price       string `json:"price" binding:"required"`
	Minutes     *int   `json:"minutes"`
	WashTypeIDs []uint `json:"wash_types"`
}

type createCarWashRequest struct {
	CarWashName        string                `json:"car_wash_name" binding:"required"`
	Street             string                `json:"street"`
	City               string                `json:"city"`
	State              string                `json:"state"`
	StateCode          *string               `json:"state_code"`
	PostalCode         string                `json:"postal_code"`
	Country            string                `json:"country"`
	CountryCode        string                `json:"country_code"`
	FormattedAddress   string                `json:"formatted_address"`
	Phone              *string               `json:"phone"`
	Website            *string               `json:"website"`
	Latitude           float64               `json:"latitude" binding:"required"`
	Longitude          float64               `json:"longitude" binding:"required"`
	AutomaticCarWash   bool                  `json:"automatic_car_wash"`
	SelfServiceCarWash bool                  `json:"self_service_car_wash"`
	Open24Hours        bool                  `json:"open_24_hours"`
	ImageURL           string                `json:"image_url"`
	OperatingHours     []operatingHoursInput `json:"operating_hours"`
	Packages           []packageInput        `json:"packages"`
	WashTypeIDs        []uint                `json:"wash_types"`
	AmenityIDs         []uint                `json:"amenities"`
}

// CreateCarWash godoc
// @Summary Create a car wash
// @Description Add a new car wash with its operating hours, packages, wash types, and amenities. Signed-in users earn reward points for the listing.
// @Tags Car Washes
// @Accept json
// @Produce json
// @Param carWash body createCarWashRequest true "Car wash payload"
// @Success 201 {object} models.ApiResponse "Car wash created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash [post]
func CreateCarWash(c *gin.Context) {
	var req createCarWashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	if !req.AutomaticCarWash && !req.SelfServiceCarWash {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Car wash must be automatic, self-service, or both"))
		return
	}

	var createdBy *uuid.UUID
	if idStr, ok := middleware.GetUserIDFromContext(c); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			createdBy = &id
		}
	}

	carWash := models.CarWash{
		CarWashName:        req.CarWashName,
		Street:             req.Street,
		City:               req.City,
		State:              req.State,
		StateCode:          req.StateCode,
		PostalCode:         req.PostalCode,
		Country:            req.Country,
		CountryCode:        req.CountryCode,
		FormattedAddress:   req.FormattedAddress,
		Phone:              req.Phone,
		Website:            req.Website,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AutomaticCarWash:   req.AutomaticCarWash,
		SelfServiceCarWash: req.SelfServiceCarWash,
		Open24Hours:        req.Open24Hours,
		ImageURL:           req.ImageURL,
		Status:             "ACTIVE",
		CreatedBy:          createdBy,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&carWash).Error; err != nil {
			return err
		}

		for _, oh := range req.OperatingHours {
			hours := models.CarWashOperatingHours{
				CarWashID:   carWash.ID,
				DayOfWeek:   oh.DayOfWeek,
				IsClosed:    oh.IsClosed,
				OpeningTime: oh.OpeningTime,
				ClosingTime: oh.ClosingTime,
			}
			if err := tx.Create(&hours).Error; err != nil {
				return err
			}
		}

		for _, p := range req.Packages {
			pkg := models.CarWashPackage{
				CarWashID: carWash.ID,
				Name:      p.Name,
				Category:  p.Category,
				Price:     p.Price,
				Minutes:   p.Minutes,
			}
			if err := tx.Create(&pkg).Error; err != nil {
				return err
			}
			if len(p.WashTypeIDs) > 0 {
				var washTypes []models.WashType
				if err := tx.Where("id IN ?", p.WashTypeIDs).Find(&washTypes).Error; err != nil {
					return err
				}
				if err := tx.Model(&pkg).Association("WashTypes").Replace(washTypes); err != nil {
					return err
				}
			}
		}

		if len(req.WashTypeIDs) > 0 {
			var washTypes []models.WashType
			if err := tx.Where("id IN ?", req.WashTypeIDs).Find(&washTypes).Error; err != nil {
				return err
			}
			if err := tx.Model(&carWash).Association("WashTypes").Replace(washTypes); err != nil {
				return err
			}
		}

		if len(req.AmenityIDs) > 0 {
			var amenities []models.Amenity
			if err := tx.Where("id IN ?", req.AmenityIDs).Find(&amenities).Error; err != nil {
				return err
			}
			if err := tx.Model(&carWash).Association("Amenities").Replace(amenities); err != nil {
				return err
			}
		}

		if createdBy != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ?", *createdBy).
				Update("points", gorm.Expr("points + ?", PointsForListing)).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("[carwash.create] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create car wash"))
		return
	}

	log.Printf("[carwash.create] created car wash %d (%s)", carWash.ID, carWash.CarWashName)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Car wash created successfully", carWash))
}
