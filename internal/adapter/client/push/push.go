package push

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jibli-app/jibli-backend/internal/adapter/config"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"go.uber.org/zap"
)

// Client delivers push messages over the provider's HTTP API. Delivery is
// best-effort: every failure mode collapses into a false return, nothing
// crosses the port boundary as an error.
type Client struct {
	logger *zap.Logger
	host   string
	apiKey string
	http   *http.Client
}

func NewClient(cfg *config.Push, log *zap.Logger) (*Client, error) {
	return &Client{
		logger: log,
		host:   cfg.HostString,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type pushMessage struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type pushResponse struct {
	MessageID string `json:"message_id"`
}

func (c *Client) SendToRecipient(ctx context.Context, recipient domain.Recipient,
	title, body string, payload map[string]string) bool {
	if recipient.DeviceToken == "" {
		c.logger.Debug("recipient has no device token",
			zap.Uint64("user", recipient.UserID))
		return false
	}

	msg := pushMessage{
		Token: recipient.DeviceToken,
		Title: title,
		Body:  body,
		Data:  payload,
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("encoding push message", zap.Error(err))
		return false
	}

	requestStr := "http://" + c.host + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(raw))
	if err != nil {
		c.logger.Error("building push request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("push request failed",
			zap.Uint64("user", recipient.UserID), zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("push rejected by provider",
			zap.Uint64("user", recipient.UserID),
			zap.Int("status", resp.StatusCode))
		return false
	}

	var result pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn("decoding push response", zap.Error(err))
		return false
	}

	c.logger.Debug("push accepted",
		zap.Uint64("user", recipient.UserID),
		zap.String("message", result.MessageID))
	return true
}
