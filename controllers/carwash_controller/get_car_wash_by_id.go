package carwash_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/pricing"
	"gorm.io/gorm"
)

// GetCarWashByID godoc
// @Summary Get a car wash by ID
// @Description Retrieve a single car wash with its packages resolved against currently active offers, plus a reviews summary.
// @Tags Car Washes
// @Produce json
// @Param id path int true "Car wash ID"
// @Success 200 {object} models.ApiResponse "Car wash fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid car wash ID"
// @Failure 404 {object} models.ApiResponse "Car wash not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/{id} [get]
func GetCarWashByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car wash ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var carWash models.CarWash
	if err := config.DB.
		WithContext(ctx).
		Preload("OperatingHours").
		Preload("Images").
		Preload("Packages").
		Preload("Packages.WashTypes").
		Preload("WashTypes").
		Preload("Amenities").
		First(&carWash, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car wash not found"))
			return
		}
		log.Printf("[carwash.get] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch car wash"))
		return
	}

	var offers []models.Offer
	if err := config.DB.
		WithContext(ctx).
		Where("car_wash_id = ? AND status = 'ACTIVE'", carWash.ID).
		Find(&offers).Error; err != nil {
		log.Printf("[carwash.get] offers query failed, serving base prices: %v", err)
		offers = nil
	}

	resolved := pricing.ResolveCarWash(carWash, offers, time.Now().UTC())

	summary, err := fetchReviewsSummary(carWash.ID)
	if err != nil {
		log.Printf("[carwash.get] reviews summary failed: %v", err)
		summary = &models.ReviewsSummary{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car wash fetched successfully", gin.H{
		"car_wash":        resolved,
		"reviews_summary": summary,
	}))
}

// fetchReviewsSummary aggregates the star histogram with a single query on
// the pgx pool.
func fetchReviewsSummary(carWashID uint) (*models.ReviewsSummary, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(rating), 0),
			COUNT(*) FILTER (WHERE rating = 5),
			COUNT(*) FILTER (WHERE rating = 4),
			COUNT(*) FILTER (WHERE rating = 3),
			COUNT(*) FILTER (WHERE rating = 2),
			COUNT(*) FILTER (WHERE rating = 1)
		FROM reviews
		WHERE car_wash_id = $1
	`

	var summary models.ReviewsSummary
	err := config.PgPool.QueryRow(ctx, query, carWashID).Scan(
		&summary.TotalReviews,
		&summary.AverageRating,
		&summary.Rating5,
		&summary.Rating4,
		&summary.Rating3,
		&summary.Rating2,
		&summary.Rating1,
	)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
