package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncTemplates(t *testing.T) {
	svc, deps := newTestService(t)

	deps.zoom.On("ListWebinarTemplates", mock.Anything).Return([]zoom.Template{
		{ID: "tmpl-1", Name: "Standard", Type: 1},
		{ID: "tmpl-2", Name: "Workshop", Type: 1},
	}, nil)
	deps.db.On("InsertTemplateIfMissing", mock.MatchedBy(func(tmpl *models.WebinarTemplate) bool {
		return tmpl.ZoomTemplateID == "tmpl-1" && tmpl.Title == "Standard"
	})).Return(false, nil)
	deps.db.On("InsertTemplateIfMissing", mock.MatchedBy(func(tmpl *models.WebinarTemplate) bool {
		return tmpl.ZoomTemplateID == "tmpl-2"
	})).Return(true, nil)

	result, err := svc.SyncTemplates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 1, result.Inserted)
	deps.assertExpectations(t)
}

func TestSyncTemplatesService_ZoomFailure(t *testing.T) {
	svc, deps := newTestService(t)

	deps.zoom.On("ListWebinarTemplates", mock.Anything).
		Return(nil, &zoom.APIError{Op: "Failed to fetch webinar templates", Status: 401, Body: "unauthorized"})

	rec := httptest.NewRecorder()
	SyncTemplatesService(svc, rec, httptest.NewRequest(http.MethodPost, "/api/templates/sync", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	deps.assertExpectations(t)
}

func TestGetTemplatesService(t *testing.T) {
	svc, deps := newTestService(t)

	deps.db.On("ListTemplates").Return([]models.WebinarTemplate{{ZoomTemplateID: "tmpl-1", Title: "Standard"}}, nil)

	rec := httptest.NewRecorder()
	GetTemplatesService(svc, rec, httptest.NewRequest(http.MethodGet, "/api/templates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse(t, rec).Data, 1)
	deps.assertExpectations(t)
}
