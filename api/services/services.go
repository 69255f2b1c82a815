package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/EO-DataHub/zoom-webinar-services/internal/appconfig"
	"github.com/EO-DataHub/zoom-webinar-services/internal/events"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WebinarStore is the persistence used by the service. It is implemented by
// db.WebinarDB.
type WebinarStore interface {
	InsertWebinar(wb *models.Webinar) error
	GetWebinar(webinarID uuid.UUID) (*models.Webinar, error)
	GetWebinarByZoomID(zoomWebinarID string) (*models.Webinar, error)
	ListWebinars() ([]models.Webinar, error)
	ListWebinarsPendingAttendance() ([]models.Webinar, error)
	UpdateWebinar(wb *models.Webinar) (*sql.Tx, error)
	DeleteWebinar(webinarID uuid.UUID) (*sql.Tx, error)
	CommitTransaction(tx *sql.Tx) error
	RollbackTransaction(tx *sql.Tx) error

	InsertRegistration(reg *models.Registration) error
	GetRegistrations(webinarID uuid.UUID) ([]models.Registration, error)
	GetRegistrationByEmail(webinarID uuid.UUID, email string) (*models.Registration, error)

	SaveAttendance(webinarID uuid.UUID, records []models.AttendanceRecord) (int, error)
	GetAttendance(webinarID uuid.UUID) ([]models.AttendanceRecord, error)

	InsertTemplateIfMissing(tmpl *models.WebinarTemplate) (bool, error)
	ListTemplates() ([]models.WebinarTemplate, error)
}

// ZoomClient is the part of the Zoom API the service uses. It is implemented
// by zoom.Client.
type ZoomClient interface {
	CreateWebinar(ctx context.Context, req zoom.CreateWebinarRequest) (*zoom.Webinar, error)
	UpdateWebinar(ctx context.Context, webinarID string, req zoom.UpdateWebinarRequest) error
	DeleteWebinar(ctx context.Context, webinarID string) error
	GetWebinar(ctx context.Context, webinarID string) (*zoom.Webinar, error)
	ListUpcomingWebinars(ctx context.Context) ([]zoom.Webinar, error)
	AddRegistrant(ctx context.Context, webinarID string, req zoom.RegistrantRequest) (*zoom.Registrant, error)
	ListWebinarTemplates(ctx context.Context) ([]zoom.Template, error)
	GetAttendanceDetails(ctx context.Context, webinarID string) ([]zoom.AttendanceSummary, error)
}

// UserDirectory resolves usernames to user details. It is implemented by
// KeycloakClient.
type UserDirectory interface {
	GetUser(username string) (*models.User, error)
}

// Service contains all shared dependencies for handlers.
type Service struct {
	Config    *appconfig.Config
	DB        WebinarStore
	Zoom      ZoomClient
	Users     UserDirectory
	Publisher events.Notifier
	Location  *time.Location
	Validate  *validator.Validate
}

// NewService wires the dependencies together. A nil publisher drops events.
func NewService(cfg *appconfig.Config, store WebinarStore, zc ZoomClient, users UserDirectory, publisher events.Notifier) (*Service, error) {
	loc, err := cfg.Zoom.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid zoom timezone: %w", err)
	}
	if publisher == nil {
		publisher = events.NopNotifier{}
	}

	return &Service{
		Config:    cfg,
		DB:        store,
		Zoom:      zc,
		Users:     users,
		Publisher: publisher,
		Location:  loc,
		Validate:  validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (s *Service) adminRole() string {
	if s.Config == nil || s.Config.Webinars.AdminRole == "" {
		return appconfig.DefaultAdminRole
	}
	return s.Config.Webinars.AdminRole
}

// publish announces a change. Failures are only logged since the change has
// already been applied on Zoom and in the database.
func (s *Service) publish(ctx context.Context, wb *models.Webinar, action string) {
	event := models.WebinarEvent{
		WebinarID:     wb.ID,
		ZoomWebinarID: wb.ZoomWebinarID,
		Action:        action,
		Timestamp:     time.Now().UTC().Unix(),
	}
	if err := s.Publisher.Notify(ctx, event); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("webinar_id", wb.ID.String()).
			Str("action", action).
			Msg("Failed to publish webinar event")
	}
}
