package models

import (
	"net/url"
	"strconv"
)

// Sort options per car wash tab. The first entry of the active tab's list is
// the default sort.
var (
	AutomaticSortOptions   = []string{"recommended", "price_high_to_low", "price_low_to_high", "distance_near_to_far"}
	SelfServiceSortOptions = []string{"price_low_to_high", "price_high_to_low", "distance_near_to_far"}
)

// Default scalar values used when a query parameter is absent or malformed.
const (
	DefaultDistanceMiles = 3
	DefaultPageSize      = 30
)

// FilterState holds every active search/sort/pagination criterion for the car
// wash dashboard. It round-trips losslessly through the URL query string: the
// query string is the shareable, bookmarkable representation of a search, and
// this backend and the Go client SDK speak the same wire format.
type FilterState struct {
	AutomaticCarWash   bool     `json:"automaticCarWash"`
	SelfServiceCarWash bool     `json:"selfServiceCarWash"`
	WashTypeName       []string `json:"washTypeName"`
	Ratings            []int    `json:"ratings"`
	Distance           float64  `json:"distance"`
	PriceRange         float64  `json:"priceRange"`
	AmenityName        []string `json:"amenityName"`
	OperatingHours     []string `json:"operatingHours"`
	Offers             []string `json:"offers"`
	SortBy             []string `json:"sortBy"`
	Pagination         bool     `json:"pagination"`
	PageSize           int      `json:"page_size"`
	Page               int      `json:"page"`
	UserLat            float64  `json:"userLat"`
	UserLng            float64  `json:"userLng"`
}

// DefaultFilterState returns the state produced by parsing an empty query
// string: the automatic tab with its first sort option.
func DefaultFilterState() FilterState {
	return ParseFilterState(url.Values{})
}

// ParseFilterState builds a fully populated FilterState from URL query
// parameters. Malformed or missing values fall back to their documented
// defaults; this never fails and never returns a partially populated state.
func ParseFilterState(q url.Values) FilterState {
	f := FilterState{
		// Automatic is the default wash-type view, so the two booleans have
		// asymmetric defaults.
		AutomaticCarWash:   parseQueryBool(q, "automaticCarWash", true),
		SelfServiceCarWash: parseQueryBool(q, "selfServiceCarWash", false),
		WashTypeName:       stringList(q, "washTypeName"),
		Ratings:            intList(q, "ratings"),
		Distance:           parseQueryFloat(q, "distance", DefaultDistanceMiles),
		PriceRange:         parseQueryFloat(q, "priceRange", 0),
		AmenityName:        stringList(q, "amenityName"),
		OperatingHours:     stringList(q, "operatingHours"),
		Offers:             stringList(q, "offers"),
		SortBy:             stringList(q, "sortBy"),
		Pagination:         parseQueryBool(q, "pagination", true),
		PageSize:           parseQueryInt(q, "page_size", DefaultPageSize),
		Page:               parseQueryInt(q, "page", 1),
		UserLat:            parseQueryFloat(q, "userLat", 0),
		UserLng:            parseQueryFloat(q, "userLng", 0),
	}
	if len(f.SortBy) == 0 {
		f.SortBy = []string{f.DefaultSort()}
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Values serializes the state back into query parameters: one parameter per
// scalar, repeated keys per array element (sortBy order preserved, it is the
// only order-sensitive field), booleans as the literal "true"/"false".
func (f FilterState) Values() url.Values {
	q := url.Values{}
	q.Set("automaticCarWash", strconv.FormatBool(f.AutomaticCarWash))
	q.Set("selfServiceCarWash", strconv.FormatBool(f.SelfServiceCarWash))
	for _, v := range f.WashTypeName {
		q.Add("washTypeName", v)
	}
	for _, r := range f.Ratings {
		q.Add("ratings", strconv.Itoa(r))
	}
	q.Set("distance", formatFloat(f.Distance))
	q.Set("priceRange", formatFloat(f.PriceRange))
	for _, v := range f.AmenityName {
		q.Add("amenityName", v)
	}
	for _, v := range f.OperatingHours {
		q.Add("operatingHours", v)
	}
	for _, v := range f.Offers {
		q.Add("offers", v)
	}
	for _, v := range f.SortBy {
		q.Add("sortBy", v)
	}
	q.Set("pagination", strconv.FormatBool(f.Pagination))
	q.Set("page_size", strconv.Itoa(f.PageSize))
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("userLat", formatFloat(f.UserLat))
	q.Set("userLng", formatFloat(f.UserLng))
	return q
}

// HasLocation reports whether the user's position is known. A (0, 0) pair
// means "location not yet acquired", not the equator; no fetch is valid
// before this returns true.
func (f FilterState) HasLocation() bool {
	return f.UserLat != 0 && f.UserLng != 0
}

// DefaultSort returns the first sort option of whichever wash-type tab is
// active.
func (f FilterState) DefaultSort() string {
	if f.AutomaticCarWash {
		return AutomaticSortOptions[0]
	}
	return SelfServiceSortOptions[0]
}

// PrimarySort returns the first (primary) sort key.
func (f FilterState) PrimarySort() string {
	if len(f.SortBy) == 0 {
		return f.DefaultSort()
	}
	return f.SortBy[0]
}

func parseQueryBool(q url.Values, key string, def bool) bool {
	vals, ok := q[key]
	if !ok || len(vals) == 0 {
		return def
	}
	return vals[0] == "true"
}

func parseQueryInt(q url.Values, key string, def int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return def
	}
	return n
}

func parseQueryFloat(q url.Values, key string, def float64) float64 {
	v, err := strconv.ParseFloat(q.Get(key), 64)
	if err != nil {
		return def
	}
	return v
}

func stringList(q url.Values, key string) []string {
	out := make([]string, 0, len(q[key]))
	return append(out, q[key]...)
}

func intList(q url.Values, key string) []int {
	out := make([]int, 0, len(q[key]))
	for _, v := range q[key] {
		if n, err := strconv.Atoi(v); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
