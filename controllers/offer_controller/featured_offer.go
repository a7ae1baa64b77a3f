package offer_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/pricing"
	"github.com/zenapticlabs/washbuddy-backend/utils"
)

// GetFeaturedOffer godoc
// @Summary Get the featured offer near a location
// @Description Pick the featured geographical offer for the user's position: tight radius, cheapest first, smallest radius breaking ties.
// @Tags Offers
// @Produce json
// @Param userLat query number true "User latitude"
// @Param userLng query number true "User longitude"
// @Success 200 {object} models.ApiResponse "Featured offer fetched successfully"
// @Failure 400 {object} models.ApiResponse "Missing or invalid coordinates"
// @Failure 404 {object} models.ApiResponse "No featured offer nearby"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/offers/featured [get]
func GetFeaturedOffer(c *gin.Context) {
	userLat, errLat := strconv.ParseFloat(c.Query("userLat"), 64)
	userLng, errLng := strconv.ParseFloat(c.Query("userLng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "userLat and userLng are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rows []offerWithLocation
	if err := config.DB.
		WithContext(ctx).
		Raw(`
			SELECT o.*, cw.latitude, cw.longitude
			FROM offers o
			JOIN car_washes cw ON cw.id = o.car_wash_id
			WHERE o.status = 'ACTIVE' AND cw.status = 'ACTIVE'
			  AND o.offer_type = 'GEOGRAPHICAL'
		`).
		Scan(&rows).Error; err != nil {
		log.Printf("[offer.featured] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	// Only offers whose radius actually covers the user are candidates
	candidates := make([]models.Offer, 0, len(rows))
	for _, row := range rows {
		radius, err := strconv.ParseFloat(row.RadiusMiles, 64)
		if err != nil {
			continue
		}
		if utils.HaversineMiles(userLat, userLng, row.Latitude, row.Longitude) <= radius {
			candidates = append(candidates, row.Offer)
		}
	}

	featured := pricing.SelectFeaturedOffer(candidates)
	if featured == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No featured offer nearby"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured offer fetched successfully", featured))
}
