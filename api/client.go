package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Service is the subset of the control-plane API the console invokes.
// Implementations can be real (Client) or mock (for testing).
type Service interface {
	// ListEdges returns all registered edges in server order.
	ListEdges(ctx context.Context) ([]Edge, error)

	// SiteConfig returns the desired configuration for a site.
	SiteConfig(ctx context.Context, siteID string) (SiteConfig, error)

	// SaveSiteConfig replaces the desired configuration for a site.
	// The document is forwarded exactly as parsed; the console does not
	// interpret it.
	SaveSiteConfig(ctx context.Context, siteID string, doc any) error

	// GenerateToken mints a single-use enrollment token for a site.
	GenerateToken(ctx context.Context, siteID string) (string, error)

	// EdgeConfig returns the desired configuration a registered edge
	// would converge to.
	EdgeConfig(ctx context.Context, edgeID string) (SiteConfig, error)

	// Health checks whether the API is reachable.
	Health(ctx context.Context) error
}

// HTTPError is a response with a failure status. Status code, status
// text, and the raw response body are surfaced verbatim to the operator.
type HTTPError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.StatusText, e.Body)
}

// Client issues HTTP requests against the control-plane API.
// It holds no state beyond the base URL; no retries, no caching.
type Client struct {
	// BaseURL is the API origin, without a trailing slash.
	BaseURL string

	// HTTPClient is the transport. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
}

// Ensure Client implements Service.
var _ Service = (*Client)(nil)

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// do performs one request/response exchange. A non-nil body is JSON
// encoded and sent with a matching content type. Non-2xx responses are
// returned as *HTTPError carrying the raw body text. On success the
// response body is decoded into dst unless dst is nil.
func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if dst == nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// statusText extracts the reason phrase from a response status line.
// Falls back to the standard text for the code when the server sent none.
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return resp.Status[len(prefix):]
	}
	return http.StatusText(resp.StatusCode)
}

// ListEdges returns all registered edges and the sites they belong to.
func (c *Client) ListEdges(ctx context.Context) ([]Edge, error) {
	var out edgeList
	if err := c.do(ctx, http.MethodGet, "/api/edges", nil, &out); err != nil {
		return nil, err
	}
	return out.Edges, nil
}

// SiteConfig returns the desired configuration stored for a site.
func (c *Client) SiteConfig(ctx context.Context, siteID string) (SiteConfig, error) {
	var out SiteConfig
	if err := c.do(ctx, http.MethodGet, sitePath(siteID, "desired-config"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveSiteConfig replaces the desired configuration for a site.
func (c *Client) SaveSiteConfig(ctx context.Context, siteID string, doc any) error {
	return c.do(ctx, http.MethodPost, sitePath(siteID, "desired-config"), doc, nil)
}

// GenerateToken mints an enrollment token for a site. The token is
// returned once and never stored locally.
func (c *Client) GenerateToken(ctx context.Context, siteID string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, sitePath(siteID, "enrollment-token"), nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// EdgeConfig returns the desired configuration for a registered edge.
func (c *Client) EdgeConfig(ctx context.Context, edgeID string) (SiteConfig, error) {
	var out SiteConfig
	path := "/api/edges/" + url.PathEscape(edgeID) + "/desired-config"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health checks API reachability via the unauthenticated health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// sitePath builds /api/sites/{site_id}/{suffix} with the id escaped.
func sitePath(siteID, suffix string) string {
	return "/api/sites/" + url.PathEscape(siteID) + "/" + suffix
}
