package i5

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/CondeSun/i5Req/internal/journal"
	"github.com/CondeSun/i5Req/pkg/batch"
	"github.com/CondeSun/i5Req/pkg/transport"
)

// Client is the main client for submitting Interface5 batches
type Client struct {
	transport *transport.Client
	journal   journal.Store
	logger    *slog.Logger
}

// ClientConfig holds client configuration. All fields are optional: a nil
// HTTPSConfig uses transport defaults, a nil Journal disables journaling
// and a nil Logger falls back to slog.Default.
type ClientConfig struct {
	HTTPSConfig *transport.HTTPSConfig
	Journal     journal.Store
	Logger      *slog.Logger
}

// NewClient creates a new Interface5 client
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = &ClientConfig{}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		transport: transport.NewClient(config.HTTPSConfig),
		journal:   config.Journal,
		logger:    logger,
	}
}

// Submit serializes a validated request and posts it to the given endpoint,
// returning the raw response. When a journal is configured, the delivery is
// recorded best-effort: a journal write failure is logged but not returned,
// since the batch has already been delivered.
func (c *Client) Submit(ctx context.Context, validated *batch.Validated, endpoint transport.Endpoint) (*transport.Response, error) {
	body, err := validated.JSON()
	if err != nil {
		return nil, err
	}

	log := c.logger.With(
		"request", validated.Name(),
		"endpoint", endpoint.URL(),
	)

	resp, err := c.transport.Send(ctx, endpoint, body)
	if err != nil {
		log.Error("batch submission failed", "error", err)
		return nil, err
	}

	log.Info("batch submitted",
		"status", resp.StatusCode,
		"documents", validated.Len(),
		"body_bytes", len(body),
	)

	if c.journal != nil {
		delivery := &journal.Delivery{
			ID:            uuid.New().String(),
			RequestName:   validated.Name(),
			Endpoint:      endpoint.URL(),
			DocumentCount: validated.Len(),
			BodyBytes:     len(body),
			StatusCode:    resp.StatusCode,
			SubmittedAt:   time.Now().UTC(),
			Response:      resp.Body,
		}
		if jerr := c.journal.RecordDelivery(ctx, delivery); jerr != nil {
			log.Warn("failed to journal delivery", "error", jerr)
		}
	}

	return resp, nil
}

// SubmitRequest validates a request and submits it in one step.
func (c *Client) SubmitRequest(ctx context.Context, req *batch.Request, endpoint transport.Endpoint) (*transport.Response, error) {
	validated, err := req.Validate()
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, validated, endpoint)
}
