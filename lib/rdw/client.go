package rdw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mertowave/nld-vehicle-data-portal/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("rdw")

const (
	// BaseURL is the RDW licensed-vehicles dataset resource.
	BaseURL = "https://opendata.rdw.nl/resource/m9d7-ebf2.json"
	// DefaultPageSize is the number of rows requested per page when the
	// caller does not choose one.
	DefaultPageSize = 10000
	// DefaultTimeout applies per HTTP request, not to a whole fetch.
	DefaultTimeout = 30 * time.Second

	appTokenHeader = "X-App-Token"
	appTokenEnv    = "RDW_APP_TOKEN"
)

// StatusError is a non-2xx response from the open-data API.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rdw: unexpected status %s", e.Status)
}

// Unauthorized reports whether the request was rejected for rate limiting
// or a missing/invalid app token. Callers use this to suggest supplying one.
func (e *StatusError) Unauthorized() bool {
	return e.StatusCode == http.StatusForbidden
}

// Client talks to the RDW open-data endpoint.
type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// BaseURL overrides the production dataset URL, mainly for tests.
	BaseURL string
	// AppToken raises the anonymous rate limits when present.
	AppToken string
	// Timeout per individual request. Zero means DefaultTimeout.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseURL
	if baseUrl == "" {
		baseUrl = BaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	if opts.AppToken != "" {
		client.SetHeader(appTokenHeader, opts.AppToken)
	}

	telemetry.InstrumentResty(client, "rdw/http")

	return &Client{http: client}
}

// ResolveAppToken prefers an explicitly supplied token and falls back to
// the RDW_APP_TOKEN environment variable. Empty means anonymous access.
func ResolveAppToken(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(appTokenEnv)
}

// getRows issues one request and decodes the JSON array response. Numbers
// are kept as json.Number so the translator sees their exact source form.
func (c *Client) getRows(ctx context.Context, params map[string]string) ([]RawRecord, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("rdw: request failed: %w", err)
	}
	if res.IsError() {
		return nil, &StatusError{
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
			Body:       res.String(),
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(res.Body()))
	decoder.UseNumber()
	var rows []RawRecord
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("rdw: decode response: %w", err)
	}
	return rows, nil
}
