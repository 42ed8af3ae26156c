// Package client implements the authenticated request executor the resource
// services send their requests through: OAuth2 client-credentials token
// handling, JSON request/response plumbing and API error decoding.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/config"
	"golang.org/x/sync/singleflight"
)

// API base URLs for the two PayPal environments.
const (
	APIBaseLive    = "https://api.paypal.com"
	APIBaseSandbox = "https://api.sandbox.paypal.com"
)

// Executor issues one authenticated API request. Body is encoded as JSON
// when non-nil; the response body is decoded into out when out is non-nil.
type Executor interface {
	Execute(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
}

// APIError is a decoded PayPal error response.
type APIError struct {
	StatusCode      int              `json:"-"`
	Name            string           `json:"name"`
	Message         string           `json:"message"`
	DebugID         string           `json:"debug_id"`
	InformationLink string           `json:"information_link,omitempty"`
	Details         []APIErrorDetail `json:"details,omitempty"`
}

// APIErrorDetail is one field-level entry of an API error.
type APIErrorDetail struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal api error %d %s: %s", e.StatusCode, e.Name, e.Message)
}

// Client is the default Executor. It fetches and caches an OAuth2 access
// token, refreshing it through singleflight so concurrent requests trigger
// at most one token call.
type Client struct {
	ClientID   string
	Secret     string
	APIBase    string
	HTTPClient *http.Client

	group       singleflight.Group
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	tokenMargin time.Duration
}

// NewClient creates a client for the given credentials and API base.
func NewClient(clientID, secret, apiBase string) (*Client, error) {
	if clientID == "" || secret == "" || apiBase == "" {
		return nil, fmt.Errorf("client id, secret and api base must all be provided")
	}
	return &Client{
		ClientID:   clientID,
		Secret:     secret,
		APIBase:    strings.TrimRight(apiBase, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// NewClientFromConfig builds a client from the environment configuration,
// resolving the API base from the configured environment unless an explicit
// override is set.
func NewClientFromConfig(cfg *config.Config) (*Client, error) {
	apiBase := cfg.APIBase
	if apiBase == "" {
		switch cfg.Env {
		case "live":
			apiBase = APIBaseLive
		case "sandbox":
			apiBase = APIBaseSandbox
		default:
			return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.Env)
		}
	}
	c, err := NewClient(cfg.ClientID, cfg.Secret, apiBase)
	if err != nil {
		return nil, err
	}
	if cfg.TokenCacheTTL > 0 {
		c.tokenMargin = time.Duration(cfg.TokenCacheTTL) * time.Second
	}
	return c, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns a valid bearer token, fetching a fresh one when the
// cached token is missing or within a minute of expiry.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if token, ok := c.cachedToken(); ok {
		return token, nil
	}

	v, err, _ := c.group.Do("token", func() (interface{}, error) {
		if token, ok := c.cachedToken(); ok {
			return token, nil
		}

		form := strings.NewReader("grant_type=client_credentials")
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBase+"/v1/oauth2/token", form)
		if err != nil {
			return "", fmt.Errorf("failed to create token request: [%v]", err)
		}
		req.SetBasicAuth(c.ClientID, c.Secret)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("error requesting access token: [%v]", err)
		}
		defer resp.Body.Close()

		responseBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("error reading token response: [%v]", err)
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("token request returned status [%d]", resp.StatusCode)
		}

		var token tokenResponse
		if err = json.Unmarshal(responseBody, &token); err != nil {
			return "", fmt.Errorf("error decoding token response: [%v]", err)
		}
		if token.AccessToken == "" {
			return "", fmt.Errorf("token response contained no access token")
		}

		c.mu.Lock()
		c.token = token.AccessToken
		c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
		c.mu.Unlock()
		log.Debug("obtained access token", log.Data{"expires_in": token.ExpiresIn})

		return token.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// cachedToken returns the stored token unless it is missing or within the
// refresh margin of expiry.
func (c *Client) cachedToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	margin := c.tokenMargin
	if margin == 0 {
		margin = time.Minute
	}
	if c.token != "" && time.Until(c.tokenExpiry) > margin {
		return c.token, true
	}
	return "", false
}

// Execute sends one authenticated request and decodes the response into out.
// Non-2xx responses are returned as an APIError.
func (c *Client) Execute(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	requestURL := c.APIBase + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var requestBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: [%v]", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return fmt.Errorf("failed to create request: [%v]", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request to [%s]: [%v]", requestURL, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: [%v]", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if len(responseBody) > 0 {
			if err = json.Unmarshal(responseBody, apiErr); err != nil {
				apiErr.Message = string(responseBody)
			}
		}
		log.Error(fmt.Errorf("api request failed"), log.Data{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		})
		return apiErr
	}

	if out == nil || len(responseBody) == 0 {
		return nil
	}
	if err = json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("error decoding response body: [%v]", err)
	}
	return nil
}
