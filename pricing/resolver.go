// Package pricing computes the effective price of car wash packages under
// active promotional offers, and picks the geographic "hidden offer" teaser.
// Everything here is pure computation over in-memory slices; both the list
// endpoint and the client SDK resolve through this package so the two sides
// can never disagree on a displayed price.
package pricing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/zenapticlabs/washbuddy-backend/models"
)

// FeaturedRadiusMiles caps how far away a geographic offer may reach and
// still be surfaced as the featured teaser.
const FeaturedRadiusMiles = 5.0

// ExtendedPackage is a CarWashPackage annotated with its matched offer and
// the lowest price the user would actually pay. Derived and ephemeral:
// recomputed on every fetch cycle, never persisted.
type ExtendedPackage struct {
	models.CarWashPackage
	Offer       *models.Offer `json:"offer,omitempty"`
	IsOffer     bool          `json:"isOffer"`
	OfferType   string        `json:"offerType,omitempty"`
	LowestPrice float64       `json:"lowestPrice"`
}

// ResolvedCarWash is a CarWash whose packages have been extended, plus the
// single package with the globally lowest effective price (used for card
// display).
type ResolvedCarWash struct {
	models.CarWash
	Packages   []ExtendedPackage `json:"packages"`
	LowestPack *ExtendedPackage  `json:"lowestPack,omitempty"`
}

// OfferValidAt reports whether an offer's price may be applied at the given
// instant.
//
// ONE_TIME offers are always valid here; redemption accounting lives
// server-side. TIME_DEPENDENT offers compare the UTC wall clock (HH:mm,
// inclusive on both ends) against [StartTime, EndTime]; a window whose start
// is after its end wraps across midnight and is valid outside the numeric
// range instead. GEOGRAPHICAL offers always report false: they are excluded
// from per-package pricing and considered separately by
// SelectFeaturedOffer.
func OfferValidAt(o *models.Offer, now time.Time) bool {
	switch o.OfferType {
	case models.OfferOneTime:
		return true
	case models.OfferTimeDependent:
		start, ok := minutesOfDay(o.StartTime)
		if !ok {
			return false
		}
		end, ok := minutesOfDay(o.EndTime)
		if !ok {
			return false
		}
		t := now.UTC().Hour()*60 + now.UTC().Minute()
		if start <= end {
			return t >= start && t <= end
		}
		// Midnight-crossing window, e.g. 22:00-02:00.
		return t >= start || t <= end
	default:
		return false
	}
}

// MatchOffer picks the offer applied to a package: same (PackageID,
// CarWashID), active, non-geographic, valid at now, with a parseable price.
// When several candidates remain the lowest-priced one wins; equal prices
// keep the earliest in slice order, so the result is deterministic rather
// than an iteration-order accident.
func MatchOffer(pkg models.CarWashPackage, carWashID uint, offers []models.Offer, now time.Time) *models.Offer {
	var (
		best      *models.Offer
		bestPrice float64
	)
	for i := range offers {
		o := &offers[i]
		if o.PackageID != pkg.ID || o.CarWashID != carWashID {
			continue
		}
		if o.Status != "" && o.Status != "ACTIVE" {
			continue
		}
		if o.OfferType == models.OfferGeographical || !OfferValidAt(o, now) {
			continue
		}
		price, ok := parsePrice(o.OfferPrice)
		if !ok {
			continue
		}
		if best == nil || price < bestPrice {
			best = o
			bestPrice = price
		}
	}
	return best
}

// ExtendPackage computes the lowest effective price for one package. The
// base price is the starting candidate; a matched offer replaces it only
// when strictly lower, so an equal-priced promotion never earns a badge.
func ExtendPackage(pkg models.CarWashPackage, carWashID uint, offers []models.Offer, now time.Time) ExtendedPackage {
	base, _ := parsePrice(pkg.Price)
	ext := ExtendedPackage{CarWashPackage: pkg, LowestPrice: base}

	offer := MatchOffer(pkg, carWashID, offers, now)
	if offer == nil {
		return ext
	}
	price, ok := parsePrice(offer.OfferPrice)
	if !ok || price >= base {
		return ext
	}
	ext.Offer = offer
	ext.IsOffer = true
	ext.OfferType = offer.OfferType
	ext.LowestPrice = price
	return ext
}

// ResolveCarWash extends every package of one car wash and records the
// package achieving the global minimum. Ties keep the first-encountered
// package (stable, packages are not re-sorted).
func ResolveCarWash(cw models.CarWash, offers []models.Offer, now time.Time) ResolvedCarWash {
	resolved := ResolvedCarWash{CarWash: cw, Packages: make([]ExtendedPackage, 0, len(cw.Packages))}
	for _, pkg := range cw.Packages {
		resolved.Packages = append(resolved.Packages, ExtendPackage(pkg, cw.ID, offers, now))
	}
	for i := range resolved.Packages {
		if resolved.LowestPack == nil || resolved.Packages[i].LowestPrice < resolved.LowestPack.LowestPrice {
			resolved.LowestPack = &resolved.Packages[i]
		}
	}
	return resolved
}

// Resolve joins a fetched car wash page against the fetched offers. A nil
// offer slice means the offers fetch failed: every package degrades to its
// base price instead of suppressing car wash display.
func Resolve(carWashes []models.CarWash, offers []models.Offer, now time.Time) []ResolvedCarWash {
	out := make([]ResolvedCarWash, 0, len(carWashes))
	for _, cw := range carWashes {
		out = append(out, ResolveCarWash(cw, offers, now))
	}
	return out
}

// SelectFeaturedOffer returns the single geographic offer to surface as the
// hidden-offer teaser: radius at most FeaturedRadiusMiles, lowest price
// first, smaller radius winning price ties. Nil when nothing qualifies.
// Recomputed on every fetch cycle, never cached.
func SelectFeaturedOffer(offers []models.Offer) *models.Offer {
	type candidate struct {
		offer  *models.Offer
		price  float64
		radius float64
	}
	var candidates []candidate
	for i := range offers {
		o := &offers[i]
		if o.OfferType != models.OfferGeographical {
			continue
		}
		radius, ok := parsePrice(o.RadiusMiles)
		if !ok || radius > FeaturedRadiusMiles {
			continue
		}
		price, ok := parsePrice(o.OfferPrice)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{offer: o, price: price, radius: radius})
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].price != candidates[j].price {
			return candidates[i].price < candidates[j].price
		}
		return candidates[i].radius < candidates[j].radius
	})
	return candidates[0].offer
}

// SortResolved orders a resolved page by the primary sort key. Price keys
// compare offer-adjusted lowest prices, which is why this runs after
// resolution; recommended and distance ordering normally arrive pre-sorted
// from SQL and pass through unchanged here.
func SortResolved(results []ResolvedCarWash, sortKey string) {
	switch sortKey {
	case "price_low_to_high":
		sort.SliceStable(results, func(i, j int) bool {
			return lowestPrice(results[i]) < lowestPrice(results[j])
		})
	case "price_high_to_low":
		sort.SliceStable(results, func(i, j int) bool {
			return lowestPrice(results[i]) > lowestPrice(results[j])
		})
	case "distance_near_to_far":
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Distance < results[j].Distance
		})
	}
}

func lowestPrice(r ResolvedCarWash) float64 {
	if r.LowestPack == nil {
		return 0
	}
	return r.LowestPack.LowestPrice
}

// minutesOfDay parses "HH:mm" (tolerating a trailing ":ss") into minutes
// since midnight.
func minutesOfDay(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
