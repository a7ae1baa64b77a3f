package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

var emailClient *ResendClient

// InitEmailService wires the shared Resend client at startup.
func InitEmailService() {
	emailClient = NewResendClient()
	log.Println("✅ Resend email service initialized")
}

// GetEmailService returns the shared Resend client.
func GetEmailService() *ResendClient {
	return emailClient
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@washbuddy.app"
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SendOTPEmail sends a one-time login code. The code itself lives in Redis
// with a 10 minute TTL; this only delivers it.
func (r *ResendClient) SendOTPEmail(to, code string) error {
	htmlBody := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
			<h2 style="color: #1e3a8a;">Your WashBuddy login code</h2>
			<p>Use this code to sign in. It expires in 10 minutes.</p>
			<p style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">%s</p>
			<p style="color: #6b7280; font-size: 12px;">If you didn't request this, you can ignore this email.</p>
		</div>`, code)

	return r.send(to, "Your WashBuddy login code", htmlBody)
}

// SendWashCodeEmail delivers the purchased wash code after a payment
// completes.
func (r *ResendClient) SendWashCodeEmail(to, carWashName, washCode string) error {
	htmlBody := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
			<h2 style="color: #1e3a8a;">Your wash is ready</h2>
			<p>Show this code at <strong>%s</strong>:</p>
			<p style="font-size: 28px; letter-spacing: 4px; font-weight: bold;">%s</p>
			<p style="color: #6b7280; font-size: 12px;">You can also find it in your purchase history.</p>
		</div>`, carWashName, washCode)

	return r.send(to, "Your WashBuddy wash code", htmlBody)
}

func (r *ResendClient) send(to, subject, htmlBody string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] send failed (%d): %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	log.Printf("[resend] email sent to %s: %s", to, subject)
	return nil
}
