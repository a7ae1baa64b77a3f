package carwash_controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

func TestBuildCarWashConditions_Defaults(t *testing.T) {
	f := models.DefaultFilterState()

	conditions, args := buildCarWashConditions(f)

	require.Len(t, conditions, 2)
	assert.Equal(t, "cw.status = 'ACTIVE'", conditions[0])
	assert.Equal(t, "cw.automatic_car_wash = TRUE", conditions[1])
	assert.Empty(t, args)
}

func TestBuildCarWashConditions_CategoryToggles(t *testing.T) {
	f := models.DefaultFilterState()
	f.AutomaticCarWash = false
	f.SelfServiceCarWash = true
	conditions, _ := buildCarWashConditions(f)
	assert.Contains(t, conditions, "cw.self_service_car_wash = TRUE")

	f.AutomaticCarWash = true
	conditions, _ = buildCarWashConditions(f)
	for _, cond := range conditions {
		assert.NotContains(t, cond, "car_wash = TRUE", "both categories on means no category restriction")
	}

	f.AutomaticCarWash = false
	f.SelfServiceCarWash = false
	conditions, _ = buildCarWashConditions(f)
	assert.Contains(t, conditions, "1 = 0", "both categories off matches nothing")
}

func TestBuildCarWashConditions_ArgOrderMatchesPlaceholders(t *testing.T) {
	f := models.DefaultFilterState()
	f.WashTypeName = []string{"Touchless"}
	f.Ratings = []int{4, 5}
	f.PriceRange = 20
	f.UserLat = 41.9
	f.UserLng = -87.6

	conditions, args := buildCarWashConditions(f)

	joined := strings.Join(conditions, " AND ")
	assert.Equal(t, strings.Count(joined, "?"), len(args))
	// wash type name, two ratings, price cap, then lat/lng/lat/radius
	assert.Equal(t, []interface{}{"Touchless", 4, 5, float64(20), 41.9, -87.6, 41.9, float64(3)}, args)
}

func TestBuildCarWashConditions_NoRadiusWithoutLocation(t *testing.T) {
	f := models.DefaultFilterState()
	f.Distance = 10

	conditions, _ := buildCarWashConditions(f)
	joined := strings.Join(conditions, " AND ")
	assert.NotContains(t, joined, "acos", "radius filter needs a location")
}

func TestBuildCarWashOrderClause(t *testing.T) {
	f := models.DefaultFilterState()
	assert.Contains(t, buildCarWashOrderClause(f), "reviews_average", "recommended sorts by rating")

	f.SortBy = []string{"price_low_to_high"}
	assert.Contains(t, buildCarWashOrderClause(f), "MIN(p.price::numeric)")
	assert.Contains(t, buildCarWashOrderClause(f), "ASC")

	f.SortBy = []string{"distance_near_to_far"}
	assert.Equal(t, "cw.created_at DESC", buildCarWashOrderClause(f), "distance sort without location falls back")

	f.UserLat, f.UserLng = 41.9, -87.6
	assert.Equal(t, "distance ASC", buildCarWashOrderClause(f))
}
