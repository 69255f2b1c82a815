package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
host: webinars.example.com
database:
  source: "{{.TEST_DATABASE_URL}}"
pulsar:
  url: pulsar://localhost:6650
  topicProducer: webinar-events
keycloak:
  clientId: webinar-services
  url: https://auth.example.com
  realm: example
zoom:
  accountId: acc-123
  clientId: zoom-client
  timezone: Europe/London
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_DATABASE_URL", "postgres://u:p@localhost:5432/webinars?sslmode=disable")

	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "webinars.example.com", cfg.Host)
	assert.Equal(t, "postgres://u:p@localhost:5432/webinars?sslmode=disable", cfg.Database.Source)
	assert.Equal(t, "webinar-events", cfg.Pulsar.TopicProducer)
	assert.Equal(t, "example", cfg.Keycloak.Realm)
	assert.Equal(t, "acc-123", cfg.Zoom.AccountID)

	// defaults
	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, "/api/docs", cfg.DocsPath)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, DefaultAdminRole, cfg.Webinars.AdminRole)

	loc, err := cfg.Zoom.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestLoadConfig_DefaultTimezone(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "host: localhost\n"))
	require.NoError(t, err)

	loc, err := cfg.Zoom.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadConfig_MissingPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "host: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadConfig_UnsetVariableIsEmpty(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "pulsar:\n  url: \"{{.WEBINAR_TEST_UNSET_PULSAR_URL}}\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Pulsar.URL)
}
