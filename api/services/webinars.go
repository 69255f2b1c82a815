package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/EO-DataHub/zoom-webinar-services/db"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func (s *Service) startTime(wb *models.Webinar) (string, error) {
	startTime, err := zoom.FormatStartTime(wb.Date, wb.StartTime, s.Location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return startTime, nil
}

// agendaOrTitle is the agenda sent to Zoom, which falls back to the title.
func agendaOrTitle(wb *models.Webinar) string {
	if wb.Agenda != "" {
		return wb.Agenda
	}
	return wb.Title
}

// CreateWebinar schedules the webinar on Zoom and stores it. A webinar that
// already carries a Zoom id is stored as is.
func (s *Service) CreateWebinar(ctx context.Context, wb *models.Webinar) error {
	logger := zerolog.Ctx(ctx)

	if err := s.Validate.Struct(wb); err != nil {
		return err
	}

	startTime, err := s.startTime(wb)
	if err != nil {
		return err
	}

	if wb.ZoomWebinarID == "" {
		created, err := s.Zoom.CreateWebinar(ctx, zoom.CreateWebinarRequest{
			Topic:                        wb.Title,
			Agenda:                       agendaOrTitle(wb),
			Type:                         zoom.ScheduledWebinar,
			Duration:                     zoom.DurationMinutes(wb.Duration),
			StartTime:                    startTime,
			Settings:                     zoom.DefaultSettings(),
			RegistrantsEmailNotification: wb.SendZoomRegistrationEmail,
			TemplateID:                   wb.Template,
		})
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create webinar on Zoom")
			return err
		}

		wb.ZoomWebinarID = created.ID.String()
		wb.ZoomLink = created.JoinURL
		logger.Info().Str("zoom_webinar_id", wb.ZoomWebinarID).Msg("Webinar created on Zoom")
	}

	if err := s.DB.InsertWebinar(wb); err != nil {
		// The webinar now exists on Zoom without a local record; it can be
		// recovered with an import.
		logger.Error().Err(err).Str("zoom_webinar_id", wb.ZoomWebinarID).Msg("Failed to insert webinar into database")
		return err
	}

	logger.Info().Str("webinar_id", wb.ID.String()).Msg("Webinar created successfully")
	s.publish(ctx, wb, models.ActionCreated)
	return nil
}

// UpdateWebinar updates the editable fields of a webinar and mirrors the
// schedule to Zoom. The local change is rolled back if Zoom rejects it.
func (s *Service) UpdateWebinar(ctx context.Context, webinarID uuid.UUID, update *models.Webinar) (*models.Webinar, error) {
	logger := zerolog.Ctx(ctx).With().Str("webinar_id", webinarID.String()).Logger()

	if err := s.Validate.Struct(update); err != nil {
		return nil, err
	}

	existing, err := s.DB.GetWebinar(webinarID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	wb := *update
	wb.ID = existing.ID
	wb.ZoomWebinarID = existing.ZoomWebinarID
	wb.ZoomLink = existing.ZoomLink
	wb.AttendanceSynced = existing.AttendanceSynced
	wb.CreatedAt = existing.CreatedAt

	startTime, err := s.startTime(&wb)
	if err != nil {
		return nil, err
	}

	tx, err := s.DB.UpdateWebinar(&wb)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to update webinar in database")
		return nil, err
	}

	if wb.ZoomWebinarID != "" {
		err = s.Zoom.UpdateWebinar(ctx, wb.ZoomWebinarID, zoom.UpdateWebinarRequest{
			Topic:     wb.Title,
			Agenda:    agendaOrTitle(&wb),
			Duration:  zoom.DurationMinutes(wb.Duration),
			StartTime: startTime,
		})
		if err != nil {
			logger.Error().Err(err).Str("zoom_webinar_id", wb.ZoomWebinarID).Msg("Failed to update webinar on Zoom")
			if rbErr := s.DB.RollbackTransaction(tx); rbErr != nil {
				logger.Error().Err(rbErr).Msg("Failed to roll back webinar update")
			}
			return nil, err
		}
	}

	if err := s.DB.CommitTransaction(tx); err != nil {
		logger.Error().Err(err).Msg("Failed to commit webinar update")
		return nil, err
	}

	logger.Info().Msg("Webinar updated successfully")
	s.publish(ctx, &wb, models.ActionUpdated)
	return &wb, nil
}

// DeleteWebinar deletes a webinar locally and on Zoom. The local deletion is
// rolled back if Zoom refuses it.
func (s *Service) DeleteWebinar(ctx context.Context, webinarID uuid.UUID) error {
	logger := zerolog.Ctx(ctx).With().Str("webinar_id", webinarID.String()).Logger()

	existing, err := s.DB.GetWebinar(webinarID)
	if err != nil {
		return err
	}
	if existing == nil {
		return db.ErrNotFound
	}

	tx, err := s.DB.DeleteWebinar(webinarID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete webinar from database")
		return err
	}

	if existing.ZoomWebinarID != "" {
		if err := s.Zoom.DeleteWebinar(ctx, existing.ZoomWebinarID); err != nil {
			logger.Error().Err(err).Str("zoom_webinar_id", existing.ZoomWebinarID).Msg("Failed to delete webinar on Zoom")
			if rbErr := s.DB.RollbackTransaction(tx); rbErr != nil {
				logger.Error().Err(rbErr).Msg("Failed to roll back webinar deletion")
			}
			return err
		}
	}

	if err := s.DB.CommitTransaction(tx); err != nil {
		logger.Error().Err(err).Msg("Failed to commit webinar deletion")
		return err
	}

	logger.Info().Msg("Webinar deleted successfully")
	s.publish(ctx, existing, models.ActionDeleted)
	return nil
}

// ImportWebinar links an existing Zoom webinar to a new local record. The
// boolean reports whether a record was created; an already imported webinar
// is returned unchanged.
func (s *Service) ImportWebinar(ctx context.Context, zoomWebinarID string) (*models.Webinar, bool, error) {
	logger := zerolog.Ctx(ctx).With().Str("zoom_webinar_id", zoomWebinarID).Logger()

	if zoomWebinarID == "" {
		return nil, false, fmt.Errorf("%w: Zoom webinar id is required", ErrInvalidInput)
	}

	existing, err := s.DB.GetWebinarByZoomID(zoomWebinarID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		logger.Info().Str("webinar_id", existing.ID.String()).Msg("Webinar already imported")
		return existing, false, nil
	}

	zw, err := s.Zoom.GetWebinar(ctx, zoomWebinarID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch webinar from Zoom")
		return nil, false, err
	}

	wb := models.Webinar{
		Title:         zw.Topic,
		Agenda:        zw.Agenda,
		Duration:      zoom.DefaultDurationMinutes * 60,
		ZoomWebinarID: zw.ID.String(),
		ZoomLink:      zw.JoinURL,
	}
	if wb.Agenda == "" {
		wb.Agenda = zw.Topic
	}
	if zw.Duration > 0 {
		wb.Duration = zw.Duration * 60
	}
	if wb.ZoomWebinarID == "" {
		wb.ZoomWebinarID = zoomWebinarID
	}
	if zw.StartTime != "" {
		if wb.Date, wb.StartTime, err = zoom.SplitStartTime(zw.StartTime, s.Location); err != nil {
			return nil, false, err
		}
	}

	if err := s.DB.InsertWebinar(&wb); err != nil {
		logger.Error().Err(err).Msg("Failed to insert imported webinar")
		return nil, false, err
	}

	logger.Info().Str("webinar_id", wb.ID.String()).Msg("Webinar imported successfully")
	s.publish(ctx, &wb, models.ActionImported)
	return &wb, true, nil
}

// ListUpcomingZoomWebinars lists the upcoming webinars on the Zoom account.
func (s *Service) ListUpcomingZoomWebinars(ctx context.Context) ([]zoom.Webinar, error) {
	return s.Zoom.ListUpcomingWebinars(ctx)
}

// GetWebinar retrieves a local webinar.
func (s *Service) GetWebinar(webinarID uuid.UUID) (*models.Webinar, error) {
	wb, err := s.DB.GetWebinar(webinarID)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, db.ErrNotFound
	}
	return wb, nil
}

// ListWebinars retrieves all local webinars.
func (s *Service) ListWebinars() ([]models.Webinar, error) {
	webinars, err := s.DB.ListWebinars()
	if err != nil {
		return nil, err
	}
	if webinars == nil {
		webinars = []models.Webinar{}
	}
	return webinars, nil
}

// CreateWebinarService handles POST /webinars.
func CreateWebinarService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var payload models.Webinar
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := svc.CreateWebinar(r.Context(), &payload); err != nil {
		WriteError(w, err)
		return
	}

	location := fmt.Sprintf("%s/%s", r.URL.Path, payload.ID)
	HandleSuccessResponse(w, http.StatusCreated, payload, location)
}

// GetWebinarsService handles GET /webinars.
func GetWebinarsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	webinars, err := svc.ListWebinars()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve webinars from database")
		WriteError(w, err)
		return
	}

	logger.Info().Int("webinar_count", len(webinars)).Msg("Successfully retrieved webinars")
	HandleSuccessResponse(w, http.StatusOK, webinars)
}

// GetWebinarService handles GET /webinars/{webinar-id}.
func GetWebinarService(svc *Service, w http.ResponseWriter, r *http.Request) {
	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	wb, err := svc.GetWebinar(webinarID)
	if err != nil {
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, wb)
}

// UpdateWebinarService handles PUT /webinars/{webinar-id}.
func UpdateWebinarService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload models.Webinar
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid update request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	wb, err := svc.UpdateWebinar(r.Context(), webinarID, &payload)
	if err != nil {
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, wb)
}

// DeleteWebinarService handles DELETE /webinars/{webinar-id}.
func DeleteWebinarService(svc *Service, w http.ResponseWriter, r *http.Request) {
	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := svc.DeleteWebinar(r.Context(), webinarID); err != nil {
		WriteError(w, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, nil)
}

// ImportWebinarService handles POST /webinars/import.
func ImportWebinarService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var payload models.ImportWebinarRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid import request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}
	if err := svc.Validate.Struct(payload); err != nil {
		WriteError(w, err)
		return
	}

	wb, created, err := svc.ImportWebinar(r.Context(), payload.WebinarID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if !created {
		HandleSuccessResponse(w, http.StatusOK, wb)
		return
	}
	location := fmt.Sprintf("%s/%s", strings.TrimSuffix(r.URL.Path, "/import"), wb.ID)
	HandleSuccessResponse(w, http.StatusCreated, wb, location)
}

// GetZoomWebinarsService handles GET /zoom/webinars.
func GetZoomWebinarsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	webinars, err := svc.ListUpcomingZoomWebinars(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to list upcoming Zoom webinars")
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, webinars)
}
