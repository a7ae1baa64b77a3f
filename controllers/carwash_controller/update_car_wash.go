package carwash_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"gorm.io/gorm"
)

type updateCarWashRequest struct {
	CarWashName        *string  `json:"car_wash_name"`
	Street             *string  `json:"street"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	StateCode          *string  `json:"state_code"`
	PostalCode         *string  `json:"postal_code"`
	Country            *string  `json:"country"`
	CountryCode        *string  `json:"country_code"`
	FormattedAddress   *string  `json:"formatted_address"`
	Phone              *string  `json:"phone"`
	Website            *string  `json:"website"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	AutomaticCarWash   *bool    `json:"automatic_car_wash"`
	SelfServiceCarWash *bool    `json:"self_service_car_wash"`
	Open24Hours        *bool    `json:"open_24_hours"`
	ImageURL           *string  `json:"image_url"`
	Status             *string  `json:"status"`
	AmenityIDs         []uint   `json:"amenities"`
	WashTypeIDs        []uint   `json:"wash_types"`
}

// UpdateCarWash godoc
// @Summary Update a car wash
// @Description Partially update a car wash. Only fields present in the body are changed.
// @Tags Car Washes
// @Accept json
// @Produce json
// @Param id path int true "Car wash ID"
// @Param carWash body updateCarWashRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Car wash updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Car wash not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security BearerAuth
// @Router /carwash/{id} [patch]
func UpdateCarWash(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car wash ID"))
		return
	}

	var req updateCarWashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var carWash models.CarWash
	if err := config.DB.WithContext(ctx).First(&carWash, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car wash not found"))
			return
		}
		log.Printf("[carwash.update] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch car wash"))
		return
	}

	updates := map[string]interface{}{}
	setStr := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setStr("car_wash_name", req.CarWashName)
	setStr("street", req.Street)
	setStr("city", req.City)
	setStr("state", req.State)
	setStr("state_code", req.StateCode)
	setStr("postal_code", req.PostalCode)
	setStr("country", req.Country)
	setStr("country_code", req.CountryCode)
	setStr("formatted_address", req.FormattedAddress)
	setStr("phone", req.Phone)
	setStr("website", req.Website)
	setStr("image_url", req.ImageURL)
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.AutomaticCarWash != nil {
		updates["automatic_car_wash"] = *req.AutomaticCarWash
	}
	if req.SelfServiceCarWash != nil {
		updates["self_service_car_wash"] = *req.SelfServiceCarWash
	}
	if req.Open24Hours != nil {
		updates["open_24_hours"] = *req.Open24Hours
	}
	if req.Status != nil {
		if *req.Status != "ACTIVE" && *req.Status != "INACTIVE" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status must be ACTIVE or INACTIVE"))
			return
		}
		updates["status"] = *req.Status
	}

	if idStr, ok := middleware.GetUserIDFromContext(c); ok {
		if uid, err := uuid.Parse(idStr); err == nil {
			updates["updated_by"] = uid
		}
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&carWash).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.WashTypeIDs != nil {
			var washTypes []models.WashType
			if err := tx.Where("id IN ?", req.WashTypeIDs).Find(&washTypes).Error; err != nil {
				return err
			}
			if err := tx.Model(&carWash).Association("WashTypes").Replace(washTypes); err != nil {
				return err
			}
		}

		if req.AmenityIDs != nil {
			var amenities []models.Amenity
			if err := tx.Where("id IN ?", req.AmenityIDs).Find(&amenities).Error; err != nil {
				return err
			}
			if err := tx.Model(&carWash).Association("Amenities").Replace(amenities); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("[carwash.update] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update car wash"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car wash updated successfully", carWash))
}
