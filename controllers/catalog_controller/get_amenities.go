package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	catalog_cache "github.com/zenapticlabs/washbuddy-backend/cache"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// GetAmenities godoc
// @Summary List amenities
// @Description Retrieve the amenity catalog used by the filter panel. Served from an in-memory cache.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse "Amenities fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/amenities [get]
func GetAmenities(c *gin.Context) {
	if amenities, ok := catalog_cache.GetAmenities(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Amenities fetched successfully", amenities))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var amenities []models.Amenity
	if err := config.DB.
		WithContext(ctx).
		Where("status = 'ACTIVE'").
		Order("name").
		Find(&amenities).Error; err != nil {
		log.Printf("[catalog.amenities] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch amenities"))
		return
	}

	catalog_cache.SetAmenities(amenities)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Amenities fetched successfully", amenities))
}
