package review_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// GetReviews godoc
// @Summary List reviews for a car wash
// @Description Retrieve reviews newest first along with the star histogram summary.
// @Tags Reviews
// @Produce json
// @Param id path int true "Car wash ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse "Reviews fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid car wash ID"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/{id}/reviews [get]
func GetReviews(c *gin.Context) {
	carWashID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car wash ID"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reviews := make([]models.Review, 0)
	err = config.DB.
		WithContext(ctx).
		Raw(`
			SELECT r.*, COALESCE(u.name, 'Anonymous') AS user_name
			FROM reviews r
			LEFT JOIN users u ON u.id = r.user_id
			WHERE r.car_wash_id = ?
			ORDER BY r.created_at DESC
			LIMIT ? OFFSET ?
		`, carWashID, pageSize, (page-1)*pageSize).
		Scan(&reviews).Error
	if err != nil {
		log.Printf("[review.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}

	var summary models.ReviewsSummary
	err = config.PgPool.QueryRow(ctx, `
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
	`, carWashID).Scan(
		&summary.TotalReviews,
		&summary.AverageRating,
		&summary.Rating5,
		&summary.Rating4,
		&summary.Rating3,
		&summary.Rating2,
		&summary.Rating1,
	)
	if err != nil {
		log.Printf("[review.list] summary failed: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reviews fetched successfully", gin.H{
		"reviews": reviews,
		"summary": summary,
	}))
}
