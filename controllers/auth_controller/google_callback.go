package auth_controller

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google. Verifies the state token, exchanges the code, creates or updates the account, sets the session cookie, and redirects back to the frontend.
// @Tags Auth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google] state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[auth.google] exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("[auth.google] userinfo fetch failed: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("[auth.google] decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail

	user, err := createOrUpdateGoogleUser(&googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("[auth.google] DB error: %v", err)
		redirectToFrontendWithError(c, "Database error")
		return
	}

	if _, err := issueSession(c, user); err != nil {
		log.Printf("[auth.google] JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	log.Printf("[auth.google] login: %s (verified: %v)", user.Email, emailVerified)
	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/auth-popup")
}
