package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a WashBuddy account. Password is null for OAuth-only and OTP-only
// accounts. Points accumulate from community contributions (listing or
// updating a car wash).
type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string     `json:"email" gorm:"not null;uniqueIndex"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone"`
	Password      *string    `json:"-"`
	GoogleID      *string    `json:"-" gorm:"index"`
	AvatarURL     string     `json:"avatar_url"`
	EmailVerified bool       `json:"email_verified" gorm:"not null;default:false"`
	Points        int        `json:"points" gorm:"not null;default:0"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// GoogleUserInfo mirrors the Google userinfo endpoint payload. Google has
// shipped both "sub" and "id", and both "verified_email" and
// "email_verified", depending on endpoint version; keep all four.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}
