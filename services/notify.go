package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexmorgan-dev/portfolio-site-backend/config"
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Notifier emails the site owner when a visitor submits the contact form.
// Notification is best-effort: a failure is logged and never surfaces to
// the visitor or fails the submission.
type Notifier struct {
	logger zerolog.Logger
	client *http.Client
	apiKey string
	from   string
	to     string
}

// NewNotifierFromConfig returns nil when the Resend configuration is absent;
// callers treat a nil notifier as "notifications disabled".
func NewNotifierFromConfig(cfg map[string]string) *Notifier {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	to := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || to == "" {
		return nil
	}

	return &Notifier{
		logger: log.With().Str("serviceName", "notifier").Logger(),
		client: &http.Client{Timeout: 15 * time.Second},
		apiKey: apiKey,
		from:   config.GetString(cfg, "RESEND_FROM_EMAIL", "Portfolio <onboarding@resend.dev>"),
		to:     to,
	}
}

// MessageReceived sends the owner a copy of a new contact message.
func (n *Notifier) MessageReceived(message models.ContactMessage) {
	body := fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Message)
	if err := n.send("New contact message: "+message.Subject, body); err != nil {
		n.logger.Error().Err(err).Str("messageID", message.ID.String()).Msg("failed to send contact notification")
	}
}

func (n *Notifier) send(subject, body string) error {
	payload, err := json.Marshal(ResendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		if json.Unmarshal(respBody, &resendErr) == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}
	return nil
}
