package offer_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/utils"
)

// MaxOfferSearchRadiusMiles bounds how far out non-geographical offers are
// returned. Geographical offers carry their own tighter radius.
const MaxOfferSearchRadiusMiles = 50.0

const offerCacheTTL = 60 * time.Second

type offerWithLocation struct {
	models.Offer
	Latitude  float64 `json:"-" gorm:"column:latitude"`
	Longitude float64 `json:"-" gorm:"column:longitude"`
}

// SearchOffers godoc
// @Summary Search offers near a location
// @Description Return active offers around the user's position. Geographical offers are only included when the user is inside their radius. The response is a plain JSON array.
// @Tags Offers
// @Produce json
// @Param userLat query number true "User latitude"
// @Param userLng query number true "User longitude"
// @Success 200 {array} models.Offer "Offers near the user"
// @Failure 400 {object} models.ApiResponse "Missing or invalid coordinates"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/offers/search [get]
func SearchOffers(c *gin.Context) {
	userLat, errLat := strconv.ParseFloat(c.Query("userLat"), 64)
	userLng, errLng := strconv.ParseFloat(c.Query("userLng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "userLat and userLng are required"))
		return
	}

	// Coordinates rounded to ~100m so nearby searchers share a cache entry
	cacheKey := fmt.Sprintf("offers:search:%.3f:%.3f", userLat, userLng)
	if cached, err := config.RedisClient.Get(config.Ctx, cacheKey).Result(); err == nil {
		var offers []models.Offer
		if json.Unmarshal([]byte(cached), &offers) == nil {
			c.JSON(http.StatusOK, offers)
			return
		}
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
		`).
		Scan(&rows).Error; err != nil {
		log.Printf("[offer.search] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	offers := make([]models.Offer, 0, len(rows))
	for _, row := range rows {
		dist := utils.HaversineMiles(userLat, userLng, row.Latitude, row.Longitude)

		if row.OfferType == models.OfferGeographical {
			radius, err := strconv.ParseFloat(row.RadiusMiles, 64)
			if err != nil || dist > radius {
				continue
			}
		} else if dist > MaxOfferSearchRadiusMiles {
			continue
		}

		offers = append(offers, row.Offer)
	}

	if payload, err := json.Marshal(offers); err == nil {
		if err := config.RedisClient.Set(config.Ctx, cacheKey, payload, offerCacheTTL).Err(); err != nil {
			log.Printf("[offer.search] cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, offers)
}
