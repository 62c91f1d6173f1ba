package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/orderpipe/order-producer/internal/order"
)

// Publisher delivers canonical orders to the destination sink over HTTP.
// One synchronous attempt per order: no retry, no timeout beyond the
// transport default. A failed delivery surfaces to the caller; re-invoking
// after a failure produces a duplicate downstream write, which is a known
// limitation of the pipeline.
type Publisher struct {
	Client *http.Client
}

// NewPublisher returns a Publisher using the given HTTP client, or
// http.DefaultClient when nil.
func NewPublisher(client *http.Client) *Publisher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Publisher{Client: client}
}

// Publish POSTs the canonical order as JSON to webhookURL. Any 2xx response
// is success; transport failures and non-2xx statuses are returned as errors
// carrying the underlying cause.
func (p *Publisher) Publish(ctx context.Context, webhookURL string, ord order.CanonicalOrder) error {
	body, err := json.Marshal(ord)
	if err != nil {
		return fmt.Errorf("marshal canonical order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post to webhook: %w", err)
	}
	defer resp.Body.Close()
	// drain so the transport can reuse the connection
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
