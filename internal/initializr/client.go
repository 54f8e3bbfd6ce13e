package initializr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/initgen-labs/initgen/internal/branding"
)

// acceptHeader pins the metadata format version the client understands.
const acceptHeader = "application/vnd.initializr.v2.2+json"

// Client queries a Spring Initializr-compatible generation service.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	cl := &Client{
		httpClient: http.DefaultClient,
		userAgent:  branding.UserAgent(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Metadata fetches and decodes the version/dependency catalog of the
// service at serviceURL. The response is checked against the embedded
// metadata schema before decoding, so a misbehaving service surfaces as
// one readable error instead of a zero-valued catalog.
func (cl *Client) Metadata(serviceURL string) (*Metadata, error) {
	url := strings.TrimRight(serviceURL, "/") + "/metadata/client"

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating metadata request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", cl.userAgent)

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching service metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading metadata response: %w", err)
	}

	if err := validateMetadata(body); err != nil {
		return nil, fmt.Errorf("service metadata from %s: %w", serviceURL, err)
	}

	var doc metadataDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing metadata JSON: %w", err)
	}

	md := doc.toMetadata()
	if len(md.Versions) == 0 {
		return nil, fmt.Errorf("service at %s advertises no platform versions", serviceURL)
	}
	return md, nil
}
