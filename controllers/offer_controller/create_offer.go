package offer_controller

import (
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

type createOfferRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	OfferType   string   `json:"offer_type" binding:"required,oneof=ONE_TIME TIME_DEPENDENT GEOGRAPHICAL"`
	OfferPrice  string   `json:"offer_price" binding:"required"`
	PackageID   uint     `json:"package_id" binding:"required"`
	CarWashID   uint     `json:"car_wash_id" binding:"required"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	RadiusMiles string   `json:"radius_miles"`
	Image       string   `json:"image"`
	Codes       []string `json:"codes"`
}

func validClockTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h, errH := strconv.Atoi(s[:2])
	m, errM := strconv.Atoi(s[3:])
	return errH == nil && errM == nil && h >= 0 && h <= 23 && m >= 0 && m <= 59
}

// CreateOffer godoc
// @Summary Create an offer
// @Description Create a promotional offer on an existing package. Time-dependent offers need a UTC HH:mm window; geographical offers need a radius. Wash codes may be seeded alongside.
// @Tags Offers
// @Accept json
// @Produce json
// @Param offer body createOfferRequest true "Offer payload"
// @Success 201 {object} models.ApiResponse "Offer created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Package not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security BearerAuth
// @Router /carwash/offers [post]
func CreateOffer(c *gin.Context) {
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	if price, err := strconv.ParseFloat(req.OfferPrice, 64); err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "offer_price must be a positive decimal"))
		return
	}

	switch req.OfferType {
	case models.OfferTimeDependent:
		if !validClockTime(req.StartTime) || !validClockTime(req.EndTime) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Time-dependent offers need start_time and end_time as UTC HH:mm"))
			return
		}
	case models.OfferGeographical:
		if radius, err := strconv.ParseFloat(req.RadiusMiles, 64); err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geographical offers need a positive radius_miles"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The package must belong to the named car wash
	var pkg models.CarWashPackage
	if err := config.DB.
		WithContext(ctx).
		Where("id = ? AND car_wash_id = ?", req.PackageID, req.CarWashID).
		First(&pkg).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Package not found for this car wash"))
		return
	}

	var createdBy *uuid.UUID
	if idStr, ok := middleware.GetUserIDFromContext(c); ok {
		if uid, err := uuid.Parse(idStr); err == nil {
			createdBy = &uid
		}
	}

	offer := models.Offer{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OfferType:   req.OfferType,
		OfferPrice:  req.OfferPrice,
		PackageID:   req.PackageID,
		CarWashID:   req.CarWashID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		RadiusMiles: req.RadiusMiles,
		Image:       req.Image,
		Status:      "ACTIVE",
		CreatedBy:   createdBy,
	}

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&offer).Error; err != nil {
			return err
		}
		for _, code := range req.Codes {
			washCode := models.CarWashCode{
				ID:      uuid.New(),
				OfferID: offer.ID,
				Code:    code,
			}
			if err := tx.Create(&washCode).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[offer.create] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create offer"))
		return
	}

	log.Printf("[offer.create] created %s offer %s on package %d", offer.OfferType, offer.ID, offer.PackageID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Offer created successfully", offer))
}
