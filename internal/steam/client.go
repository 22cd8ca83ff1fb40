package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnresolved reports that the storefront could not supply a name for an
// application id. It covers missing entries, success=false payloads, and
// absent name fields alike.
var ErrUnresolved = errors.New("app name unresolved")

// AppDetails is the structured subset of the storefront response the
// exporter cares about.
type AppDetails struct {
	AppID uint64
	Name  string
}

// Client queries the Steam storefront appdetails API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a storefront client. baseURL is the scheme-and-host portion,
// e.g. https://store.steampowered.com.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storefront base url required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// appEntry mirrors one value of the appdetails response object, which is
// keyed by the requested app id:
//
//	{"238960": {"success": true, "data": {"name": "Path of Exile"}}}
type appEntry struct {
	Success bool `json:"success"`
	Data    struct {
		Name string `json:"name"`
	} `json:"data"`
}

// Lookup fetches the display name for appID. All failure modes map to an
// error wrapping ErrUnresolved except malformed configuration.
func (c *Client) Lookup(ctx context.Context, appID uint64) (AppDetails, error) {
	endpoint, err := url.Parse(c.baseURL + "/api/appdetails")
	if err != nil {
		return AppDetails{}, fmt.Errorf("parse storefront url: %w", err)
	}
	params := url.Values{}
	params.Set("appids", strconv.FormatUint(appID, 10))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return AppDetails{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return AppDetails{}, fmt.Errorf("%w: execute request: %w", ErrUnresolved, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AppDetails{}, fmt.Errorf("%w: storefront returned %d", ErrUnresolved, resp.StatusCode)
	}

	var payload map[string]appEntry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return AppDetails{}, fmt.Errorf("%w: decode response: %w", ErrUnresolved, err)
	}

	entry, ok := payload[strconv.FormatUint(appID, 10)]
	if !ok || !entry.Success {
		return AppDetails{}, fmt.Errorf("%w: no entry for app %d", ErrUnresolved, appID)
	}
	name := strings.TrimSpace(entry.Data.Name)
	if name == "" {
		return AppDetails{}, fmt.Errorf("%w: app %d has no name", ErrUnresolved, appID)
	}

	return AppDetails{AppID: appID, Name: name}, nil
}
