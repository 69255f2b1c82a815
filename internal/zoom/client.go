package zoom

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultAPIBaseURL = "https://api.zoom.us/v2"
	DefaultOAuthURL   = "https://zoom.us/oauth/token"

	// TimeFormat is the layout Zoom expects for start_time.
	TimeFormat = "2006-01-02T15:04:05Z"
)

// Client is a client for the Zoom REST API using server-to-server OAuth.
type Client struct {
	BaseURL      string
	OAuthURL     string
	AccountID    string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
}

// APIError is returned for any unexpected Zoom response. Body holds the raw
// response so it can be shown to the user.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Body)
}

// NewClient creates a new instance of Client. Empty URLs fall back to the
// public Zoom endpoints.
func NewClient(baseURL, oauthURL, accountID, clientID, clientSecret string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if oauthURL == "" {
		oauthURL = DefaultOAuthURL
	}
	return &Client{
		BaseURL:      baseURL,
		OAuthURL:     oauthURL,
		AccountID:    accountID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{},
	}
}

// Authenticate retrieves an access token with the account_credentials grant.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("grant_type", "account_credentials")
	q.Set("account_id", c.AccountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.OAuthURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.ClientID + ":" + c.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Op: "Failed to authenticate with Zoom", Status: resp.StatusCode, Body: string(body)}
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return "", &APIError{Op: "Failed to authenticate with Zoom", Status: resp.StatusCode, Body: string(body)}
	}

	return tokenResponse.AccessToken, nil
}

// AuthenticatedHeaders returns the headers every API call carries. A new
// token is requested each time.
func (c *Client) AuthenticatedHeaders(ctx context.Context) (http.Header, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Content-Type", "application/json")
	return headers, nil
}

// makeRequest sends an authenticated request and decodes the response into
// out when the status matches want. Any other status becomes an *APIError
// described by op.
func (c *Client) makeRequest(ctx context.Context, method, path string, payload interface{}, want int, op string, out interface{}) error {
	headers, err := c.AuthenticatedHeaders(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = headers

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != want {
		return &APIError{Op: op, Status: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
