package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeycloakServer(t *testing.T, users string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/realms/test-realm/protocol/openid-connect/token":
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			_, _ = w.Write([]byte(`{"access_token": "mocked-access-token"}`))
		case "/admin/realms/test-realm/users":
			assert.Equal(t, "Bearer mocked-access-token", r.Header.Get("Authorization"))
			assert.Equal(t, "true", r.URL.Query().Get("exact"))
			_, _ = w.Write([]byte(users))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestGetToken(t *testing.T) {
	server := newKeycloakServer(t, `[]`)
	defer server.Close()

	client := NewKeycloakClient(server.URL, "client-id", "client-secret", "test-realm")
	token, err := client.GetToken()
	assert.NoError(t, err)
	assert.Equal(t, "mocked-access-token", token)
}

func TestGetToken_InvalidClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "unauthorized_client", "error_description": "Invalid client credentials"}`))
	}))
	defer server.Close()

	client := NewKeycloakClient(server.URL, "client-id", "wrong", "test-realm")
	_, err := client.GetToken()

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Invalid client credentials", httpErr.Message)
}

func TestGetUser(t *testing.T) {
	server := newKeycloakServer(t, `[{"id": "u-1", "username": "alice", "firstName": "Alice", "lastName": "Smith", "email": "alice@example.com"}]`)
	defer server.Close()

	client := NewKeycloakClient(server.URL, "client-id", "client-secret", "test-realm")

	user, err := client.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	server := newKeycloakServer(t, `[{"id": "u-2", "username": "alice2"}]`)
	defer server.Close()

	client := NewKeycloakClient(server.URL, "client-id", "client-secret", "test-realm")

	_, err := client.GetUser("alice")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, http.StatusNotFound, StatusFromError(err))
}

func TestGetUser_Concurrent(t *testing.T) {
	server := newKeycloakServer(t, `[{"id": "u-1", "username": "alice", "email": "alice@example.com"}]`)
	defer server.Close()

	client := NewKeycloakClient(server.URL, "client-id", "client-secret", "test-realm")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := client.GetUser("alice")
			if err == nil && user.Email != "alice@example.com" {
				err = fmt.Errorf("unexpected email %q", user.Email)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
