package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"storefront/internal/config"
)

// Email is one transactional message. HTMLContent is a fully rendered body.
type Email struct {
	To          string
	ToName      string
	Subject     string
	HTMLContent string
}

// Client talks to the transactional email HTTP API (Brevo-compatible
// smtp/email endpoint, api-key header auth). No retries: callers treat
// dispatch as best-effort.
type Client struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	httpClient  *http.Client
}

func NewClient(cfg config.MailConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

type party struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendEmailPayload struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

func (c *Client) SendEmail(ctx context.Context, email Email) error {
	payload := sendEmailPayload{
		Sender:      party{Name: c.senderName, Email: c.senderEmail},
		To:          []party{{Name: email.ToName, Email: email.To}},
		Subject:     email.Subject,
		HTMLContent: email.HTMLContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
