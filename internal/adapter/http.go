package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerProject = "X-Appwrite-Project"
	headerSession = "X-Appwrite-Session"
	headerKey     = "X-Appwrite-Key"

	// CurrentSession addresses the session found in the request context.
	CurrentSession = "current"
)

// Client is the shared HTTP client of every adapter.
type Client struct {
	http *utils.HTTPClient

	endpoint  string
	projectID string
	apiKey    string

	logger *logger.Logger
}

// Adapters bundles the backend adapters built on one [Client].
type Adapters struct {
	Identity  IdentityAdapter
	Documents DocumentsAdapter
	Files     FilesAdapter
}

// NewClient constructs the backend client. It normalises and validates the
// endpoint from cfg.Endpoint and configures the request timeout.
//
// Returns an error if the endpoint is empty or cannot be parsed as a valid URL.
func NewClient(cfg config.Backend, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid backend endpoint: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader(headerProject, cfg.ProjectID)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.FromContext(resp.Request.Context()).Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("backend call")
		return nil
	})

	return &Client{
		http:      client,
		endpoint:  baseURL,
		projectID: cfg.ProjectID,
		apiKey:    cfg.APIKey,
		logger:    log,
	}, nil
}

// NewAdapters builds all adapters for the given backend configuration.
func NewAdapters(cfg config.Backend, log *logger.Logger) (*Adapters, error) {
	client, err := NewClient(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Adapters{
		Identity:  NewIdentityAdapter(client),
		Documents: NewDocumentsAdapter(client, cfg.DatabaseID),
		Files:     NewFilesAdapter(client, cfg.BucketID),
	}, nil
}

// Timeout returns the request timeout of the client.
func (c *Client) Timeout() time.Duration {
	return c.http.GetClient().Timeout
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a project-scoped request without credentials.
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// sessionRequest forwards the session secret stored in ctx.
func (c *Client) sessionRequest(ctx context.Context) (*resty.Request, error) {
	secret, ok := utils.GetSessionSecretFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	return c.request(ctx).SetHeader(headerSession, secret), nil
}

// keyRequest authenticates with the server API key.
func (c *Client) keyRequest(ctx context.Context) *resty.Request {
	req := c.request(ctx)
	if c.apiKey != "" {
		req.SetHeader(headerKey, c.apiKey)
	}
	return req
}
