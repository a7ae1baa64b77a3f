package auth_controller

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/utils"
	"gorm.io/gorm"
)

const authCookieMaxAge = 24 * 60 * 60

func createOrUpdateGoogleUser(googleUser *models.GoogleUserInfo, googleID string, emailVerified bool) (*models.User, error) {
	var user models.User

	result := config.DB.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				ID:            uuid.New(),
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      &googleID,
				AvatarURL:     googleUser.Picture,
				EmailVerified: emailVerified,
			}

			if err := config.DB.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar_url":     googleUser.Picture,
		"email_verified": emailVerified,
	}

	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil {
		updates["google_id"] = googleID
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.AvatarURL = googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

// issueSession stamps last_login_at, mints the JWT, and sets the auth cookie.
func issueSession(c *gin.Context, user *models.User) (string, error) {
	now := time.Now().UTC()
	if err := config.DB.Model(user).Update("last_login_at", now).Error; err == nil {
		user.LastLoginAt = &now
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		return "", err
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", token, authCookieMaxAge, "/", "", isProd, true)

	return token, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
