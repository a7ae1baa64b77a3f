package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenapticlabs/washbuddy-backend/models"
)

func atUTC(hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2025, 6, 15, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func timeOffer(start, end string) *models.Offer {
	return &models.Offer{
		OfferType:  models.OfferTimeDependent,
		OfferPrice: "5.00",
		StartTime:  start,
		EndTime:    end,
	}
}

func TestOfferValidAt_TimeDependent(t *testing.T) {
	offer := timeOffer("10:00", "14:00")

	tests := []struct {
		now   string
		valid bool
	}{
		{"12:00", true},
		{"10:00", true}, // inclusive start
		{"14:00", true}, // inclusive end
		{"09:59", false},
		{"14:01", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.valid, OfferValidAt(offer, atUTC(tc.now)), "at %s", tc.now)
	}
}

func TestOfferValidAt_MidnightCrossingWindowWraps(t *testing.T) {
	offer := timeOffer("22:00", "02:00")

	assert.True(t, OfferValidAt(offer, atUTC("23:30")))
	assert.True(t, OfferValidAt(offer, atUTC("01:00")))
	assert.True(t, OfferValidAt(offer, atUTC("22:00")))
	assert.True(t, OfferValidAt(offer, atUTC("02:00")))
	assert.False(t, OfferValidAt(offer, atUTC("12:00")))
	assert.False(t, OfferValidAt(offer, atUTC("21:59")))
}

func TestOfferValidAt_MalformedWindowNeverValid(t *testing.T) {
	assert.False(t, OfferValidAt(timeOffer("banana", "14:00"), atUTC("12:00")))
	assert.False(t, OfferValidAt(timeOffer("10:00", ""), atUTC("12:00")))
}

func TestOfferValidAt_OneTimeAndGeographical(t *testing.T) {
	oneTime := &models.Offer{OfferType: models.OfferOneTime, OfferPrice: "5.00"}
	geo := &models.Offer{OfferType: models.OfferGeographical, OfferPrice: "0.01", RadiusMiles: "1"}

	assert.True(t, OfferValidAt(oneTime, atUTC("03:00")))
	assert.False(t, OfferValidAt(geo, atUTC("12:00")), "geographic offers are excluded from the validity predicate")
}

func TestExtendPackage_StrictImprovement(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Name: "Deluxe", Price: "10.00"}
	offers := []models.Offer{{
		OfferType:  models.OfferOneTime,
		OfferPrice: "7.00",
		PackageID:  7,
		CarWashID:  3,
	}}

	ext := ExtendPackage(pkg, 3, offers, atUTC("12:00"))
	assert.True(t, ext.IsOffer)
	assert.Equal(t, models.OfferOneTime, ext.OfferType)
	assert.Equal(t, 7.0, ext.LowestPrice)
	require.NotNil(t, ext.Offer)
}

func TestExtendPackage_EqualPriceKeepsBase(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Price: "10.00"}
	offers := []models.Offer{{
		OfferType:  models.OfferOneTime,
		OfferPrice: "10.00",
		PackageID:  7,
		CarWashID:  3,
	}}

	ext := ExtendPackage(pkg, 3, offers, atUTC("12:00"))
	assert.False(t, ext.IsOffer, "ties favor the plain price over a promo badge")
	assert.Equal(t, 10.0, ext.LowestPrice)
	assert.Nil(t, ext.Offer)
}

func TestExtendPackage_GeographicalNeverApplied(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Price: "10.00"}
	offers := []models.Offer{{
		OfferType:   models.OfferGeographical,
		OfferPrice:  "0.50",
		RadiusMiles: "2",
		PackageID:   7,
		CarWashID:   3,
	}}

	ext := ExtendPackage(pkg, 3, offers, atUTC("12:00"))
	assert.False(t, ext.IsOffer)
	assert.Equal(t, 10.0, ext.LowestPrice)
}

func TestExtendPackage_MalformedOfferPriceSkipped(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Price: "10.00"}
	offers := []models.Offer{{
		OfferType:  models.OfferOneTime,
		OfferPrice: "not-a-price",
		PackageID:  7,
		CarWashID:  3,
	}}

	ext := ExtendPackage(pkg, 3, offers, atUTC("12:00"))
	assert.False(t, ext.IsOffer)
	assert.Equal(t, 10.0, ext.LowestPrice)
}

func TestExtendPackage_TimeWindowGatesOffer(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Price: "10.00"}
	offers := []models.Offer{{
		OfferType:  models.OfferTimeDependent,
		OfferPrice: "4.00",
		StartTime:  "10:00",
		EndTime:    "14:00",
		PackageID:  7,
		CarWashID:  3,
	}}

	assert.True(t, ExtendPackage(pkg, 3, offers, atUTC("12:00")).IsOffer)
	assert.False(t, ExtendPackage(pkg, 3, offers, atUTC("14:01")).IsOffer)
}

func TestMatchOffer_LowestPriceWinsAcrossMultipleMatches(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Price: "20.00"}
	offers := []models.Offer{
		{Name: "weekday", OfferType: models.OfferOneTime, OfferPrice: "9.00", PackageID: 7, CarWashID: 3},
		{Name: "flash", OfferType: models.OfferOneTime, OfferPrice: "6.00", PackageID: 7, CarWashID: 3},
		{Name: "flash-dup", OfferType: models.OfferOneTime, OfferPrice: "6.00", PackageID: 7, CarWashID: 3},
		{Name: "other-wash", OfferType: models.OfferOneTime, OfferPrice: "1.00", PackageID: 7, CarWashID: 4},
	}

	matched := MatchOffer(pkg, 3, offers, atUTC("12:00"))
	require.NotNil(t, matched)
	assert.Equal(t, "flash", matched.Name, "lowest price wins, earlier offer kept on ties")
}

func TestMatchOffer_InactiveSkipped(t *testing.T) {
	pkg := models.CarWashPackage{ID: 7, CarWashID: 3, Price: "20.00"}
	offers := []models.Offer{
		{OfferType: models.OfferOneTime, OfferPrice: "6.00", PackageID: 7, CarWashID: 3, Status: "EXPIRED"},
	}

	assert.Nil(t, MatchOffer(pkg, 3, offers, atUTC("12:00")))
}

func TestResolveCarWash_LowestPackStableOnTies(t *testing.T) {
	cw := models.CarWash{
		ID: 3,
		Packages: []models.CarWashPackage{
			{ID: 1, CarWashID: 3, Name: "Basic", Price: "8.00"},
			{ID: 2, CarWashID: 3, Name: "Shine", Price: "8.00"},
			{ID: 3, CarWashID: 3, Name: "Works", Price: "15.00"},
		},
	}

	resolved := ResolveCarWash(cw, nil, atUTC("12:00"))
	require.NotNil(t, resolved.LowestPack)
	assert.Equal(t, "Basic", resolved.LowestPack.Name, "first-encountered package wins the tie")
	assert.Equal(t, 8.0, resolved.LowestPack.LowestPrice)
}

func TestResolve_NilOffersDegradesToBasePrices(t *testing.T) {
	carWashes := []models.CarWash{{
		ID: 3,
		Packages: []models.CarWashPackage{
			{ID: 1, CarWashID: 3, Price: "8.00"},
			{ID: 2, CarWashID: 3, Price: "12.00"},
		},
	}}

	resolved := Resolve(carWashes, nil, atUTC("12:00"))
	require.Len(t, resolved, 1)
	for _, pkg := range resolved[0].Packages {
		assert.False(t, pkg.IsOffer)
	}
	require.NotNil(t, resolved[0].LowestPack)
	assert.Equal(t, 8.0, resolved[0].LowestPack.LowestPrice)
}

func TestSelectFeaturedOffer(t *testing.T) {
	offers := []models.Offer{
		{Name: "a", OfferType: models.OfferGeographical, OfferPrice: "5", RadiusMiles: "4"},
		{Name: "b", OfferType: models.OfferGeographical, OfferPrice: "5", RadiusMiles: "2"},
		{Name: "c", OfferType: models.OfferGeographical, OfferPrice: "6", RadiusMiles: "1"},
		{Name: "too-far", OfferType: models.OfferGeographical, OfferPrice: "1", RadiusMiles: "7"},
		{Name: "not-geo", OfferType: models.OfferOneTime, OfferPrice: "0.01"},
	}

	featured := SelectFeaturedOffer(offers)
	require.NotNil(t, featured)
	assert.Equal(t, "b", featured.Name, "lowest price, then smallest radius")
}

func TestSelectFeaturedOffer_Empty(t *testing.T) {
	assert.Nil(t, SelectFeaturedOffer(nil))
	assert.Nil(t, SelectFeaturedOffer([]models.Offer{{OfferType: models.OfferOneTime, OfferPrice: "1"}}))
}

func TestSortResolved_PriceUsesResolvedLowest(t *testing.T) {
	now := atUTC("12:00")
	carWashes := []models.CarWash{
		{ID: 1, Packages: []models.CarWashPackage{{ID: 1, CarWashID: 1, Price: "12.00"}}},
		{ID: 2, Packages: []models.CarWashPackage{{ID: 2, CarWashID: 2, Price: "20.00"}}},
	}
	// Offer pulls car wash 2 below car wash 1.
	offers := []models.Offer{{OfferType: models.OfferOneTime, OfferPrice: "5.00", PackageID: 2, CarWashID: 2}}

	resolved := Resolve(carWashes, offers, now)
	SortResolved(resolved, "price_low_to_high")
	assert.Equal(t, uint(2), resolved[0].ID)

	SortResolved(resolved, "price_high_to_low")
	assert.Equal(t, uint(1), resolved[0].ID)
}
