package catalog_cache

import (
	"sync"
	"time"

	"github.com/zenapticlabs/washbuddy-backend/models"
)

const TTL = 5 * time.Minute

// ── Wash type catalog cache ──────────────────────────────────────────────────
// The wash-type and amenity catalogs change only through admin seeding, so a
// short in-process TTL is enough to keep the filter panel snappy.

type washTypeEntry struct {
	data      []models.WashType
	fetchedAt time.Time
}

var (
	washTypeMu    sync.RWMutex
	washTypeCache *washTypeEntry
)

func GetWashTypes() ([]models.WashType, bool) {
	washTypeMu.RLock()
	defer washTypeMu.RUnlock()
	if washTypeCache != nil && time.Since(washTypeCache.fetchedAt) < TTL {
		return washTypeCache.data, true
	}
	return nil, false
}

func SetWashTypes(data []models.WashType) {
	washTypeMu.Lock()
	defer washTypeMu.Unlock()
	washTypeCache = &washTypeEntry{data: data, fetchedAt: time.Now()}
}

// ── Amenity catalog cache ────────────────────────────────────────────────────

type amenityEntry struct {
	data      []models.Amenity
	fetchedAt time.Time
}

var (
	amenityMu    sync.RWMutex
	amenityCache *amenityEntry
)

func GetAmenities() ([]models.Amenity, bool) {
	amenityMu.RLock()
	defer amenityMu.RUnlock()
	if amenityCache != nil && time.Since(amenityCache.fetchedAt) < TTL {
		return amenityCache.data, true
	}
	return nil, false
}

func SetAmenities(data []models.Amenity) {
	amenityMu.Lock()
	defer amenityMu.Unlock()
	amenityCache = &amenityEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog change) ───────────────────────

func Invalidate() {
	washTypeMu.Lock()
	washTypeCache = nil
	washTypeMu.Unlock()

	amenityMu.Lock()
	amenityCache = nil
	amenityMu.Unlock()
}
