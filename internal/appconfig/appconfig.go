package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host     string         `yaml:"host"`
	BasePath string         `yaml:"basePath"`
	DocsPath string         `yaml:"docsPath"`
	Database DatabaseConfig `yaml:"database"`
	Pulsar   PulsarConfig   `yaml:"pulsar"`
	Keycloak KeycloakConfig `yaml:"keycloak"`
	AWS      AWSConfig      `yaml:"aws"`
	Zoom     ZoomConfig     `yaml:"zoom"`
	Webinars WebinarsConfig `yaml:"webinars"`
}

// DatabaseConfig defines the database connection details
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
}

// PulsarConfig defines the messaging system connection details
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
}

// KeycloakConfig defines authentication configuration
type KeycloakConfig struct {
	ClientId string `yaml:"clientId"`
	URL      string `yaml:"url"`
	Realm    string `yaml:"realm"`
}

type AWSConfig struct {
	Region string `yaml:"region"`
}

// ZoomConfig holds the server-to-server OAuth app credentials. The client
// secret comes from ZOOM_CLIENT_SECRET or, when ClientSecretID is set, from
// AWS Secrets Manager.
type ZoomConfig struct {
	APIURL         string `yaml:"apiUrl"`
	OAuthURL       string `yaml:"oauthUrl"`
	AccountID      string `yaml:"accountId"`
	ClientID       string `yaml:"clientId"`
	ClientSecretID string `yaml:"clientSecretId"`
	Timezone       string `yaml:"timezone"`
}

// WebinarsConfig controls who may manage webinars
type WebinarsConfig struct {
	AdminRole string `yaml:"adminRole"`
}

const DefaultAdminRole = "webinar_admin"

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Unset variables render as empty strings
	tmpl.Option("missingkey=zero")

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.setDefaults()

	return &config, nil
}

func (c *Config) setDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.DocsPath == "" {
		c.DocsPath = "/api/docs"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Zoom.Timezone == "" {
		c.Zoom.Timezone = "UTC"
	}
	if c.Webinars.AdminRole == "" {
		c.Webinars.AdminRole = DefaultAdminRole
	}
}

// Location returns the time zone local webinar dates and times are in.
func (z ZoomConfig) Location() (*time.Location, error) {
	return time.LoadLocation(z.Timezone)
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
