package carwash_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// ListCarWashes godoc
// @Summary List car washes
// @Description Retrieve active car washes filtered by category, wash type, amenity, rating, price ceiling, operating hours, and distance from the user's location.
// @Tags Car Washes
// @Produce json
// @Param automaticCarWash query boolean false "Include automatic car washes" default(true)
// @Param selfServiceCarWash query boolean false "Include self-service car washes" default(false)
// @Param washTypeName query []string false "Wash type names (repeatable)"
// @Param ratings query []int false "Whole-star rating buckets (repeatable)"
// @Param distance query number false "Search radius in miles" default(3)
// @Param priceRange query number false "Maximum package price"
// @Param amenityName query []string false "Amenity names (repeatable)"
// @Param operatingHours query []string false "Operating hours filters (repeatable)"
// @Param sortBy query []string false "Sort keys (repeatable)"
// @Param userLat query number false "User latitude"
// @Param userLng query number false "User longitude"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(30)
// @Param pagination query boolean false "Enable pagination" default(true)
// @Success 200 {object} models.CarWashListEnvelope "Car washes fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/list-car-wash [get]
func ListCarWashes(c *gin.Context) {
	filters := models.ParseFilterState(c.Request.URL.Query())

	washes, totalCount, err := fetchCarWashesFromDB(c, filters)
	if err != nil {
		log.Printf("[carwash.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch car washes"))
		return
	}

	totalPages := 1
	if filters.Pagination && filters.PageSize > 0 {
		totalPages = (totalCount + filters.PageSize - 1) / filters.PageSize
		if totalPages < 1 {
			totalPages = 1
		}
	}

	c.JSON(http.StatusOK, models.CarWashListEnvelope{
		Count: totalCount,
		Links: models.PageLinks{
			TotalPages:  totalPages,
			CurrentPage: filters.Page,
		},
		Results: washes,
	})
}
