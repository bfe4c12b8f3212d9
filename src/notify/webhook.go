package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

// WebhookDispatcher posts JSON payloads to a configured URL. Transient
// failures (network errors, 5xx) are retried with exponential backoff;
// 4xx responses are terminal.
type WebhookDispatcher struct {
	client *http.Client
	logger *logrus.Logger
}

func NewWebhookDispatcher(logger *logrus.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (d *WebhookDispatcher) Send(ctx context.Context, url string, payload interface{}) error {
	if url == "" {
		return fmt.Errorf("no webhook url configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize webhook payload: %w", err)
	}

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err != nil {
			d.logger.WithError(err).Warn("webhook request failed, retrying")
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			d.logger.WithField("status", resp.StatusCode).Warn("webhook returned server error, retrying")
			return retry.RetryableError(fmt.Errorf("webhook returned %d", resp.StatusCode))
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("webhook rejected payload with %d", resp.StatusCode)
		}
		return nil
	})
}
