package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterState_EmptyQueryDefaults(t *testing.T) {
	f := ParseFilterState(url.Values{})

	assert.True(t, f.AutomaticCarWash)
	assert.False(t, f.SelfServiceCarWash)
	assert.Equal(t, float64(3), f.Distance)
	assert.Equal(t, float64(0), f.PriceRange)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 30, f.PageSize)
	assert.True(t, f.Pagination)
	assert.Equal(t, float64(0), f.UserLat)
	assert.Equal(t, float64(0), f.UserLng)
	assert.Equal(t, []string{"recommended"}, f.SortBy)
	assert.Empty(t, f.WashTypeName)
	assert.Empty(t, f.Ratings)
	assert.Empty(t, f.AmenityName)
	assert.Empty(t, f.OperatingHours)
	assert.Empty(t, f.Offers)
}

func TestParseFilterState_SelfServiceSortFallback(t *testing.T) {
	q := url.Values{}
	q.Set("automaticCarWash", "false")
	q.Set("selfServiceCarWash", "true")

	f := ParseFilterState(q)
	assert.Equal(t, []string{"price_low_to_high"}, f.SortBy,
		"self-service tab falls back to its own first sort option")
}

func TestParseFilterState_MalformedValuesFailSoft(t *testing.T) {
	q := url.Values{}
	q.Set("distance", "not-a-number")
	q.Set("page", "-3")
	q.Set("page_size", "zero")
	q.Set("priceRange", "")
	q.Add("ratings", "5")
	q.Add("ratings", "banana")
	q.Add("ratings", "3")

	f := ParseFilterState(q)
	assert.Equal(t, float64(3), f.Distance)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 30, f.PageSize)
	assert.Equal(t, float64(0), f.PriceRange)
	assert.Equal(t, []int{5, 3}, f.Ratings, "non-numeric ratings are dropped")
}

func TestParseFilterState_BooleanLiteralTrueOnly(t *testing.T) {
	q := url.Values{}
	q.Set("automaticCarWash", "TRUE")
	f := ParseFilterState(q)
	assert.False(t, f.AutomaticCarWash, `only the literal "true" parses as true`)

	q.Set("automaticCarWash", "true")
	assert.True(t, ParseFilterState(q).AutomaticCarWash)
}

func TestFilterState_RoundTrip(t *testing.T) {
	state := FilterState{
		AutomaticCarWash:   false,
		SelfServiceCarWash: true,
		WashTypeName:       []string{"Touchless", "Soft Touch"},
		Ratings:            []int{4, 5},
		Distance:           12.5,
		PriceRange:         25,
		AmenityName:        []string{"Vacuum"},
		OperatingHours:     []string{"open_now"},
		Offers:             []string{"active_offers"},
		SortBy:             []string{"distance_near_to_far", "price_low_to_high"},
		Pagination:         true,
		PageSize:           10,
		Page:               2,
		UserLat:            42.0090209,
		UserLng:            -88.154784,
	}

	parsed := ParseFilterState(state.Values())

	// sortBy order matters; the other list fields are sets.
	assert.Equal(t, state.SortBy, parsed.SortBy)
	assert.ElementsMatch(t, state.WashTypeName, parsed.WashTypeName)
	assert.ElementsMatch(t, state.Ratings, parsed.Ratings)
	assert.ElementsMatch(t, state.AmenityName, parsed.AmenityName)
	assert.ElementsMatch(t, state.OperatingHours, parsed.OperatingHours)
	assert.ElementsMatch(t, state.Offers, parsed.Offers)
	assert.Equal(t, state, parsed)
}

func TestFilterState_ValuesSerializesBooleansAndRepeats(t *testing.T) {
	f := DefaultFilterState()
	f.WashTypeName = []string{"Touchless", "Express"}

	q := f.Values()
	assert.Equal(t, "true", q.Get("automaticCarWash"))
	assert.Equal(t, "false", q.Get("selfServiceCarWash"))
	assert.Equal(t, []string{"Touchless", "Express"}, q["washTypeName"])
	assert.Equal(t, "3", q.Get("distance"))
	assert.Equal(t, "30", q.Get("page_size"))
}

func TestFilterState_HasLocation(t *testing.T) {
	f := DefaultFilterState()
	assert.False(t, f.HasLocation(), "a zero pair means location unknown")

	f.UserLat = 42.0
	assert.False(t, f.HasLocation())

	f.UserLng = -88.1
	assert.True(t, f.HasLocation())
}

func TestFilterState_PrimarySort(t *testing.T) {
	f := DefaultFilterState()
	require.Equal(t, "recommended", f.PrimarySort())

	f.SortBy = []string{"price_high_to_low", "recommended"}
	assert.Equal(t, "price_high_to_low", f.PrimarySort())
}
