package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/EO-DataHub/zoom-webinar-services/api/services"
	"github.com/EO-DataHub/zoom-webinar-services/db"
	"github.com/EO-DataHub/zoom-webinar-services/internal/appconfig"
	awsclient "github.com/EO-DataHub/zoom-webinar-services/internal/aws"
	"github.com/EO-DataHub/zoom-webinar-services/internal/events"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/rs/zerolog/log"
)

var (
	appCfg    *appconfig.Config
	webinarDB *db.WebinarDB
)

// commonSetUp sets up logging, loads the config and connects to the database.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	webinarDB, err = db.NewWebinarDB(appCfg.Database, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize WebinarDB")
	}
}

// commandContext carries the global logger so services log the same way
// from the CLI as from a request.
func commandContext() context.Context {
	return log.Logger.WithContext(context.Background())
}

// initializeKeycloakClient creates the Keycloak client used as user directory.
func initializeKeycloakClient(kcCfg appconfig.KeycloakConfig) *services.KeycloakClient {
	keycloakClientSecret := os.Getenv("KEYCLOAK_CLIENT_SECRET")

	return services.NewKeycloakClient(kcCfg.URL, kcCfg.ClientId, keycloakClientSecret, kcCfg.Realm)
}

// initializeZoomClient creates the Zoom client. The client secret is read
// from AWS Secrets Manager when a secret id is configured.
func initializeZoomClient(ctx context.Context, cfg *appconfig.Config) (*zoom.Client, error) {
	secret := os.Getenv("ZOOM_CLIENT_SECRET")

	if cfg.Zoom.ClientSecretID != "" {
		awsCfg, err := awsclient.LoadAWSConfig(ctx, cfg.AWS.Region)
		if err != nil {
			return nil, err
		}

		secret, err = awsclient.GetSecretString(ctx, awsclient.NewSecretsManagerClient(awsCfg), cfg.Zoom.ClientSecretID)
		if err != nil {
			return nil, fmt.Errorf("failed to read zoom client secret: %w", err)
		}
	}

	if secret == "" {
		return nil, fmt.Errorf("zoom client secret is not set")
	}

	return zoom.NewClient(cfg.Zoom.APIURL, cfg.Zoom.OAuthURL, cfg.Zoom.AccountID, cfg.Zoom.ClientID, secret), nil
}

// initializePublisher connects to Pulsar, or drops events when no URL is
// configured.
func initializePublisher(cfg appconfig.PulsarConfig) (events.Notifier, error) {
	if cfg.URL == "" {
		log.Warn().Msg("Pulsar URL not set, webinar events will not be published")
		return events.NopNotifier{}, nil
	}
	return events.NewEventPublisher(cfg.URL, cfg.TopicProducer)
}

// initializeService wires the Zoom client, the user directory and the event
// publisher to the database. The caller closes the returned publisher.
func initializeService(ctx context.Context) (*services.Service, events.Notifier, error) {
	zoomClient, err := initializeZoomClient(ctx, appCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Zoom client")
		return nil, nil, err
	}

	publisher, err := initializePublisher(appCfg.Pulsar)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize event publisher")
		return nil, nil, err
	}

	svc, err := services.NewService(appCfg, webinarDB, zoomClient, initializeKeycloakClient(appCfg.Keycloak), publisher)
	if err != nil {
		publisher.Close()
		log.Error().Err(err).Msg("Failed to initialize service")
		return nil, nil, err
	}

	return svc, publisher, nil
}
