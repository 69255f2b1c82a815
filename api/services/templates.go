package services

import (
	"context"
	"net/http"

	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/rs/zerolog"
)

// SyncTemplates stores the Zoom webinar templates not known yet.
func (s *Service) SyncTemplates(ctx context.Context) (*models.TemplateSyncResult, error) {
	logger := zerolog.Ctx(ctx)

	templates, err := s.Zoom.ListWebinarTemplates(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch webinar templates from Zoom")
		return nil, err
	}

	result := &models.TemplateSyncResult{Fetched: len(templates)}
	for _, t := range templates {
		inserted, err := s.DB.InsertTemplateIfMissing(&models.WebinarTemplate{
			ZoomTemplateID: t.ID,
			Title:          t.Name,
			Type:           t.Type,
		})
		if err != nil {
			logger.Error().Err(err).Str("zoom_template_id", t.ID).Msg("Failed to store webinar template")
			return nil, err
		}
		if inserted {
			result.Inserted++
		}
	}

	logger.Info().Int("fetched", result.Fetched).Int("inserted", result.Inserted).Msg("Webinar templates synced")
	return result, nil
}

// ListTemplates lists the stored webinar templates.
func (s *Service) ListTemplates() ([]models.WebinarTemplate, error) {
	templates, err := s.DB.ListTemplates()
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []models.WebinarTemplate{}
	}
	return templates, nil
}

// SyncTemplatesService handles POST /templates/sync.
func SyncTemplatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	result, err := svc.SyncTemplates(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, result)
}

// GetTemplatesService handles GET /templates.
func GetTemplatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	templates, err := svc.ListTemplates()
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve templates")
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, templates)
}
