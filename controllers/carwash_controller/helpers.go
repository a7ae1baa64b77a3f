package carwash_controller

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// haversineExpr computes the great-circle distance in miles between the
// user's point and a car wash row. Takes three args: lat, lng, lat.
const haversineExpr = `(3958.8 * acos(LEAST(1.0,
	cos(radians(?)) * cos(radians(cw.latitude)) *
	cos(radians(cw.longitude) - radians(?)) +
	sin(radians(?)) * sin(radians(cw.latitude)))))`

// buildCarWashConditions translates a FilterState into SQL conditions.
// Returns the conditions plus their bound args, in placeholder order.
func buildCarWashConditions(f models.FilterState) ([]string, []interface{}) {
	conditions := []string{"cw.status = 'ACTIVE'"}
	args := []interface{}{}

	// Category toggles. Both on means no restriction beyond status;
	// both off matches nothing.
	switch {
	case f.AutomaticCarWash && !f.SelfServiceCarWash:
		conditions = append(conditions, "cw.automatic_car_wash = TRUE")
	case !f.AutomaticCarWash && f.SelfServiceCarWash:
		conditions = append(conditions, "cw.self_service_car_wash = TRUE")
	case !f.AutomaticCarWash && !f.SelfServiceCarWash:
		conditions = append(conditions, "1 = 0")
	}

	// Wash type filter (by name, through the m2m join)
	if len(f.WashTypeName) > 0 {
		placeholders := make([]string, len(f.WashTypeName))
		for i, name := range f.WashTypeName {
			placeholders[i] = "?"
			args = append(args, strings.TrimSpace(name))
		}
		cond := fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM car_wash_wash_types cwt
				JOIN wash_types wt ON wt.id = cwt.wash_type_id
				WHERE cwt.car_wash_id = cw.id AND wt.name IN (%s)
			)`,
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	// Amenity filter
	if len(f.AmenityName) > 0 {
		placeholders := make([]string, len(f.AmenityName))
		for i, name := range f.AmenityName {
			placeholders[i] = "?"
			args = append(args, strings.TrimSpace(name))
		}
		cond := fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM car_wash_amenities cwa
				JOIN amenities a ON a.id = cwa.amenity_id
				WHERE cwa.car_wash_id = cw.id AND a.name IN (%s)
			)`,
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	// Ratings filter matches on the whole-star bucket
	if len(f.Ratings) > 0 {
		placeholders := make([]string, len(f.Ratings))
		for i, rating := range f.Ratings {
			placeholders[i] = "?"
			args = append(args, rating)
		}
		cond := fmt.Sprintf(
			"FLOOR(cw.reviews_average::numeric) IN (%s)",
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	// Price ceiling: at least one package at or under the cap
	if f.PriceRange > 0 {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM car_wash_packages p
			WHERE p.car_wash_id = cw.id AND p.price::numeric <= ?
		)`)
		args = append(args, f.PriceRange)
	}

	// Offers filter: only washes with a live offer of a requested type
	if len(f.Offers) > 0 {
		placeholders := make([]string, len(f.Offers))
		for i, offerType := range f.Offers {
			placeholders[i] = "?"
			args = append(args, strings.TrimSpace(offerType))
		}
		cond := fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM offers o
				WHERE o.car_wash_id = cw.id AND o.status = 'ACTIVE' AND o.offer_type IN (%s)
			)`,
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	// Open-now filter against today's operating hours (UTC)
	for _, oh := range f.OperatingHours {
		if oh == "open_now" {
			conditions = append(conditions, `EXISTS (
				SELECT 1 FROM car_wash_operating_hours oh
				WHERE oh.car_wash_id = cw.id
				  AND oh.day_of_week = EXTRACT(DOW FROM NOW() AT TIME ZONE 'UTC')
				  AND oh.is_closed = FALSE
				  AND oh.opening_time IS NOT NULL AND oh.closing_time IS NOT NULL
				  AND to_char(NOW() AT TIME ZONE 'UTC', 'HH24:MI') BETWEEN oh.opening_time AND oh.closing_time
			)`)
			break
		}
	}

	// Radius filter only applies once the user has shared a location
	if f.HasLocation() {
		conditions = append(conditions, haversineExpr+" <= ?")
		args = append(args, f.UserLat, f.UserLng, f.UserLat, f.Distance)
	}

	return conditions, args
}

// buildCarWashOrderClause maps a sort key onto SQL. Price sorts use the
// cheapest base package; the resolved offer price is re-sorted downstream
// once offers have been joined in.
func buildCarWashOrderClause(f models.FilterState) string {
	minPriceExpr := `(SELECT MIN(p.price::numeric) FROM car_wash_packages p WHERE p.car_wash_id = cw.id)`

	switch f.PrimarySort() {
	case "price_low_to_high":
		return minPriceExpr + " ASC NULLS LAST"
	case "price_high_to_low":
		return minPriceExpr + " DESC NULLS LAST"
	case "distance_near_to_far":
		if f.HasLocation() {
			return "distance ASC"
		}
		return "cw.created_at DESC"
	case "recommended":
		return "cw.reviews_average::numeric DESC, cw.reviews_count DESC"
	default:
		return "cw.created_at DESC"
	}
}

type carWashRow struct {
	ID       uint    `gorm:"column:id"`
	Distance float64 `gorm:"column:distance"`
}

// fetchCarWashesFromDB runs the filtered query in two steps: a raw query
// resolves matching IDs (with distance) in sort order, then GORM loads the
// full rows with associations, preserving that order.
func fetchCarWashesFromDB(c *gin.Context, f models.FilterState) ([]models.CarWash, int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	conditions, args := buildCarWashConditions(f)
	whereClause := strings.Join(conditions, " AND ")
	orderClause := buildCarWashOrderClause(f)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM car_washes cw
		WHERE %s
	`, whereClause)

	var totalCount int64
	if err := config.DB.
		WithContext(ctx).
		Raw(countQuery, args...).
		Scan(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	distSelect := "0.0 AS distance"
	dataArgs := []interface{}{}
	if f.HasLocation() {
		distSelect = haversineExpr + " AS distance"
		dataArgs = append(dataArgs, f.UserLat, f.UserLng, f.UserLat)
	}
	dataArgs = append(dataArgs, args...)

	limitClause := ""
	if f.Pagination {
		limitClause = "LIMIT ? OFFSET ?"
		dataArgs = append(dataArgs, f.PageSize, (f.Page-1)*f.PageSize)
	}

	dataQuery := fmt.Sprintf(`
		SELECT cw.id, %s
		FROM car_washes cw
		WHERE %s
		ORDER BY %s
		%s
	`, distSelect, whereClause, orderClause, limitClause)

	rows := make([]carWashRow, 0)
	if err := config.DB.
		WithContext(ctx).
		Raw(dataQuery, dataArgs...).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	if len(rows) == 0 {
		return []models.CarWash{}, int(totalCount), nil
	}

	ids := make([]uint, len(rows))
	distances := make(map[uint]float64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		distances[row.ID] = row.Distance
	}

	var washes []models.CarWash
	if err := config.DB.
		WithContext(ctx).
		Preload("OperatingHours").
		Preload("Images").
		Preload("Packages").
		Preload("Packages.WashTypes").
		Preload("WashTypes").
		Preload("Amenities").
		Where("id IN ?", ids).
		Find(&washes).Error; err != nil {
		return nil, 0, err
	}

	// Restore query order and attach the computed distance
	byID := make(map[uint]models.CarWash, len(washes))
	for _, w := range washes {
		byID[w.ID] = w
	}
	ordered := make([]models.CarWash, 0, len(ids))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			w.Distance = distances[id]
			ordered = append(ordered, w)
		}
	}

	return ordered, int(totalCount), nil
}
