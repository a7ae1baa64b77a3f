package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	catalog_cache "github.com/zenapticlabs/washbuddy-backend/cache"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// GetWashTypes godoc
// @Summary List wash types
// @Description Retrieve the wash type catalog used by the filter panel. Served from an in-memory cache.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse "Wash types fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/wash-types [get]
func GetWashTypes(c *gin.Context) {
	if washTypes, ok := catalog_cache.GetWashTypes(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Wash types fetched successfully", washTypes))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var washTypes []models.WashType
	if err := config.DB.
		WithContext(ctx).
		Where("status = 'ACTIVE'").
		Order("category, subclass, name").
		Find(&washTypes).Error; err != nil {
		log.Printf("[catalog.wash-types] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wash types"))
		return
	}

	catalog_cache.SetWashTypes(washTypes)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wash types fetched successfully", washTypes))
}
