package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/EO-DataHub/zoom-webinar-services/models"
)

// KeycloakClient is a client for interacting with the Keycloak API.
type KeycloakClient struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Realm        string
	HTTPClient   *http.Client
}

type KeycloakError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewKeycloakClient creates a new instance of KeycloakClient.
func NewKeycloakClient(baseURL, clientID, clientSecret, realm string) *KeycloakClient {
	return &KeycloakClient{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Realm:        realm,
		HTTPClient:   &http.Client{},
	}
}

// GetToken retrieves a Keycloak access token using client_credentials.
func (kc *KeycloakClient) GetToken() (string, error) {
	tokenURL := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", kc.BaseURL, kc.Realm)

	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", kc.ClientID)
	data.Set("client_secret", kc.ClientSecret)

	respBody, status, err := kc.makeRequest(http.MethodPost, tokenURL, "", "application/x-www-form-urlencoded", []byte(data.Encode()))
	if err != nil {
		var body KeycloakError
		if json.Unmarshal(respBody, &body) == nil && body.ErrorDescription != "" {
			return "", &HTTPError{Message: body.ErrorDescription, Status: status}
		}
		return "", err
	}

	// Parse the token from the response
	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	return tokenResponse.AccessToken, nil
}

// GetUser retrieves a user by exact username. A fresh service token is
// requested for every lookup.
func (kc *KeycloakClient) GetUser(username string) (*models.User, error) {
	token, err := kc.GetToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get keycloak token: %w", err)
	}

	q := url.Values{}
	q.Set("username", username)
	q.Set("exact", "true")
	usersURL := fmt.Sprintf("%s/admin/realms/%s/users?%s", kc.BaseURL, kc.Realm, q.Encode())

	respBody, statusCode, err := kc.makeRequest(http.MethodGet, usersURL, token, "application/json", nil)
	if err != nil {
		return nil, &HTTPError{Message: fmt.Sprintf("failed to fetch user by username: %v", err), Status: statusCode}
	}

	var users []models.User
	if err := json.Unmarshal(respBody, &users); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	for _, user := range users {
		if user.Username == username {
			return &user, nil
		}
	}

	return nil, &HTTPError{Message: fmt.Sprintf("user '%s' not found", username), Status: http.StatusNotFound}
}

// Helper function for making HTTP requests to keycloak API.
func (kc *KeycloakClient) makeRequest(method, url, token, contentType string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := kc.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return respBody, resp.StatusCode, fmt.Errorf("error response: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return respBody, resp.StatusCode, nil
}
