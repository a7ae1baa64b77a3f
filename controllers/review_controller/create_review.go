package review_controller

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

// CreateReview godoc
// @Summary Review a car wash
// @Description Leave a 1-5 star review. The car wash's cached rating aggregates are recomputed in the same transaction.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Car wash ID"
// @Param review body models.CreateReviewRequest true "Review payload"
// @Success 201 {object} models.ApiResponse "Review created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "Car wash not found"
// @Failure 409 {object} models.ApiResponse "Already reviewed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security BearerAuth
// @Router /carwash/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	carWashID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car wash ID"))
		return
	}

	userIDStr, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid session"))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Rating must be between 1 and 5"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var carWash models.CarWash
	if err := config.DB.WithContext(ctx).First(&carWash, uint(carWashID)).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car wash not found"))
		return
	}

	var existing int64
	config.DB.WithContext(ctx).
		Model(&models.Review{}).
		Where("car_wash_id = ? AND user_id = ?", carWashID, userID).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "You have already reviewed this car wash"))
		return
	}

	review := models.Review{
		ID:        uuid.New(),
		CarWashID: uint(carWashID),
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		// Keep the denormalized aggregates on the car wash in step
		return tx.Exec(`
			UPDATE car_washes SET
				reviews_count = (SELECT COUNT(*) FROM reviews WHERE car_wash_id = ?),
				reviews_average = (SELECT ROUND(AVG(rating)::numeric, 2) FROM reviews WHERE car_wash_id = ?)
			WHERE id = ?
		`, carWashID, carWashID, carWashID).Error
	})
	if err != nil {
		log.Printf("[review.create] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create review"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created successfully", review))
}
