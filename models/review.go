package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CarWashID uint      `json:"car_wash" gorm:"not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	UserName  string    `json:"user_name" gorm:"->;-:migration"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ReviewsSummary is the per-car-wash rating breakdown shown on detail pages.
type ReviewsSummary struct {
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating5       int     `json:"rating_5"`
	Rating4       int     `json:"rating_4"`
	Rating3       int     `json:"rating_3"`
	Rating2       int     `json:"rating_2"`
	Rating1       int     `json:"rating_1"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
