package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"TubeDigest/internal/domain"
	"TubeDigest/internal/ports"
)

// Notifier posts rendered digests to a Slack incoming webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers the webhook endpoint.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Publish sends the message payload in one attempt; any non-2xx
// response is an error for the caller to treat as fatal.
func (n *Notifier) Publish(ctx context.Context, msg domain.Message) error {
	if n.webhookURL == "" || n.client == nil {
		return fmt.Errorf("slack notifier misconfigured")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("slack error %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	return nil
}
