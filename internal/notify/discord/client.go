package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/observability"
)

const (
	// SinkName identifies the Discord sink in the registry.
	SinkName = "discord"

	maxErrorBodyBytes = 4096
	defaultTimeout    = 10 * time.Second
)

// Ensure interface conformance.
var _ domain.NotificationSink = (*Client)(nil)

// Client posts notifications to a Discord webhook.
type Client struct {
	webhookURL string
	username   string
	httpClient *http.Client
}

// NewClient creates a new Discord webhook client.
func NewClient(config Config) *Client {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		webhookURL: config.WebhookURL,
		username:   config.Username,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// webhookMessage is the Discord execute-webhook request body.
type webhookMessage struct {
	Content  string                       `json:"content"`
	Username string                       `json:"username,omitempty"`
	Embeds   []domain.NotificationPayload `json:"embeds,omitempty"`
}

// Name returns the sink identifier.
func (c *Client) Name() string {
	return SinkName
}

// Send posts text with the payload as a single embed. Failures are logged,
// including the response body when Discord returns one, and reported as false.
func (c *Client) Send(ctx context.Context, text string, payload domain.NotificationPayload) bool {
	logger := observability.FromContext(ctx)

	if err := c.post(ctx, webhookMessage{
		Content:  text,
		Username: c.username,
		Embeds:   []domain.NotificationPayload{payload},
	}); err != nil {
		logger.Error("error sending message to Discord", observability.Error(err))
		return false
	}

	logger.Info("message sent to Discord successfully")
	return true
}

func (c *Client) post(ctx context.Context, msg webhookMessage) error {
	if c.webhookURL == "" {
		return fmt.Errorf("%w: webhook URL is not configured", domain.ErrConfiguration)
	}

	reqBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("Discord API returned status %d: %s", resp.StatusCode, string(body))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
