package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EO-DataHub/zoom-webinar-services/db"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var nilTx = (*sql.Tx)(nil)

func TestCreateWebinarService(t *testing.T) {
	svc, deps := newTestService(t)

	payload := models.Webinar{
		Title:                     "Intro to EO data",
		Agenda:                    "Overview",
		Date:                      "2026-07-01",
		StartTime:                 "14:00",
		Duration:                  5400,
		Template:                  "tmpl-1",
		SendZoomRegistrationEmail: true,
	}

	// 14:00 BST is 13:00 UTC
	deps.zoom.On("CreateWebinar", mock.Anything, mock.MatchedBy(func(req zoom.CreateWebinarRequest) bool {
		return req.Topic == "Intro to EO data" &&
			req.Type == zoom.ScheduledWebinar &&
			req.Duration == 90 &&
			req.StartTime == "2026-07-01T13:00:00Z" &&
			req.TemplateID == "tmpl-1" &&
			req.RegistrantsEmailNotification &&
			req.Settings == zoom.DefaultSettings()
	})).Return(&zoom.Webinar{ID: "81234567890", JoinURL: "https://zoom.us/j/81234567890"}, nil)

	deps.db.On("InsertWebinar", mock.MatchedBy(func(wb *models.Webinar) bool {
		return wb.ZoomWebinarID == "81234567890" && wb.ZoomLink == "https://zoom.us/j/81234567890"
	})).Return(nil)
	deps.expectEvent(models.ActionCreated)

	r := withClaims(newJSONRequest(t, http.MethodPost, "/api/webinars", payload), adminClaims())
	rec := httptest.NewRecorder()

	CreateWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/api/webinars/")

	response := decodeResponse(t, rec)
	assert.Equal(t, 1, response.Success)
	data := response.Data.(map[string]interface{})
	assert.Equal(t, "81234567890", data["zoomWebinarId"])
	deps.assertExpectations(t)
}

func TestCreateWebinar_SkipsZoomWhenLinked(t *testing.T) {
	svc, deps := newTestService(t)

	deps.db.On("InsertWebinar", mock.Anything).Return(nil)
	deps.expectEvent(models.ActionCreated)

	wb := &models.Webinar{Title: "Linked", Date: "2026-07-01", StartTime: "14:00", ZoomWebinarID: "899"}
	require.NoError(t, svc.CreateWebinar(context.Background(), wb))

	deps.zoom.AssertNotCalled(t, "CreateWebinar", mock.Anything, mock.Anything)
	deps.assertExpectations(t)
}

func TestCreateWebinar_Validation(t *testing.T) {
	svc, deps := newTestService(t)

	r := newJSONRequest(t, http.MethodPost, "/api/webinars", models.Webinar{Date: "01/07/2026"})
	rec := httptest.NewRecorder()

	CreateWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeResponse(t, rec).ErrorDetails)
	deps.assertExpectations(t)
}

func TestCreateWebinar_InvalidStartTime(t *testing.T) {
	svc, deps := newTestService(t)

	err := svc.CreateWebinar(context.Background(), &models.Webinar{Title: "x", Date: "2026-07-01", StartTime: "2pm"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	deps.assertExpectations(t)
}

func TestCreateWebinar_InvalidStartTimeWhenLinked(t *testing.T) {
	svc, deps := newTestService(t)

	err := svc.CreateWebinar(context.Background(), &models.Webinar{Title: "x", Date: "2026-07-01", StartTime: "abc", ZoomWebinarID: "899"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	deps.db.AssertNotCalled(t, "InsertWebinar", mock.Anything)
	deps.assertExpectations(t)
}

func TestCreateWebinar_AgendaFallsBackToTitle(t *testing.T) {
	svc, deps := newTestService(t)

	deps.zoom.On("CreateWebinar", mock.Anything, mock.MatchedBy(func(req zoom.CreateWebinarRequest) bool {
		return req.Topic == "Go Meetup" && req.Agenda == req.Topic
	})).Return(&zoom.Webinar{ID: "812", JoinURL: "https://zoom.us/j/812"}, nil)
	deps.db.On("InsertWebinar", mock.MatchedBy(func(wb *models.Webinar) bool {
		return wb.Agenda == ""
	})).Return(nil)
	deps.expectEvent(models.ActionCreated)

	wb := &models.Webinar{Title: "Go Meetup", Date: "2026-07-01", StartTime: "14:00"}
	require.NoError(t, svc.CreateWebinar(context.Background(), wb))
	deps.assertExpectations(t)
}

func TestCreateWebinar_ZoomFailure(t *testing.T) {
	svc, deps := newTestService(t)

	deps.zoom.On("CreateWebinar", mock.Anything, mock.Anything).
		Return(nil, &zoom.APIError{Op: "Failed to create webinar on Zoom", Status: 400, Body: `{"message":"bad"}`})

	r := newJSONRequest(t, http.MethodPost, "/api/webinars", models.Webinar{Title: "x", Date: "2026-07-01", StartTime: "14:00"})
	rec := httptest.NewRecorder()

	CreateWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, `{"message":"bad"}`, decodeResponse(t, rec).ErrorDetails)
	deps.db.AssertNotCalled(t, "InsertWebinar", mock.Anything)
	deps.assertExpectations(t)
}

func existingWebinar(zoomID string) *models.Webinar {
	return &models.Webinar{
		ID:            uuid.New(),
		Title:         "Old title",
		Date:          "2026-01-15",
		StartTime:     "10:00:00",
		Duration:      3600,
		ZoomWebinarID: zoomID,
		ZoomLink:      "https://zoom.us/j/" + zoomID,
	}
}

func TestUpdateWebinarService(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("811")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)
	deps.db.On("UpdateWebinar", mock.MatchedBy(func(wb *models.Webinar) bool {
		return wb.ID == existing.ID && wb.Title == "New title" && wb.ZoomWebinarID == "811"
	})).Return(nilTx, nil)
	// 10:30 GMT is 10:30 UTC
	deps.zoom.On("UpdateWebinar", mock.Anything, "811", zoom.UpdateWebinarRequest{
		Topic:     "New title",
		Agenda:    "New agenda",
		Duration:  60,
		StartTime: "2026-01-15T10:30:00Z",
	}).Return(nil)
	deps.db.On("CommitTransaction", nilTx).Return(nil)
	deps.expectEvent(models.ActionUpdated)

	payload := models.Webinar{Title: "New title", Agenda: "New agenda", Date: "2026-01-15", StartTime: "10:30", ZoomWebinarID: "ignored"}
	r := newJSONRequest(t, http.MethodPut, "/api/webinars/"+existing.ID.String(), payload)
	r = mux.SetURLVars(r, map[string]string{"webinar-id": existing.ID.String()})
	rec := httptest.NewRecorder()

	UpdateWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, "811", data["zoomWebinarId"])
	deps.assertExpectations(t)
}

func TestUpdateWebinar_RollsBackOnZoomFailure(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("811")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)
	deps.db.On("UpdateWebinar", mock.Anything).Return(nilTx, nil)
	deps.zoom.On("UpdateWebinar", mock.Anything, "811", mock.Anything).
		Return(&zoom.APIError{Op: "Failed to update webinar on Zoom", Status: 404, Body: "not found"})
	deps.db.On("RollbackTransaction", nilTx).Return(nil)

	update := &models.Webinar{Title: "New", Date: "2026-01-15", StartTime: "10:30"}
	_, err := svc.UpdateWebinar(context.Background(), existing.ID, update)

	var apiErr *zoom.APIError
	assert.ErrorAs(t, err, &apiErr)
	deps.db.AssertNotCalled(t, "CommitTransaction", mock.Anything)
	deps.assertExpectations(t)
}

func TestUpdateWebinar_LocalOnly(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)
	deps.db.On("UpdateWebinar", mock.Anything).Return(nilTx, nil)
	deps.db.On("CommitTransaction", nilTx).Return(nil)
	deps.expectEvent(models.ActionUpdated)

	_, err := svc.UpdateWebinar(context.Background(), existing.ID, &models.Webinar{Title: "New", Date: "2026-01-15", StartTime: "10:30"})
	require.NoError(t, err)
	deps.zoom.AssertNotCalled(t, "UpdateWebinar", mock.Anything, mock.Anything, mock.Anything)
	deps.assertExpectations(t)
}

func TestUpdateWebinar_AgendaFallsBackToTitle(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("811")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)
	deps.db.On("UpdateWebinar", mock.Anything).Return(nilTx, nil)
	deps.zoom.On("UpdateWebinar", mock.Anything, "811", mock.MatchedBy(func(req zoom.UpdateWebinarRequest) bool {
		return req.Topic == "New" && req.Agenda == req.Topic
	})).Return(nil)
	deps.db.On("CommitTransaction", nilTx).Return(nil)
	deps.expectEvent(models.ActionUpdated)

	_, err := svc.UpdateWebinar(context.Background(), existing.ID, &models.Webinar{Title: "New", Date: "2026-01-15", StartTime: "10:30"})
	require.NoError(t, err)
	deps.assertExpectations(t)
}

func TestUpdateWebinar_LocalOnlyInvalidStartTime(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)

	_, err := svc.UpdateWebinar(context.Background(), existing.ID, &models.Webinar{Title: "New", Date: "2026-01-15", StartTime: "abc"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, StatusFromError(err))
	deps.db.AssertNotCalled(t, "UpdateWebinar", mock.Anything)
	deps.assertExpectations(t)
}

func TestUpdateWebinar_NotFound(t *testing.T) {
	svc, deps := newTestService(t)
	id := uuid.New()

	deps.db.On("GetWebinar", id).Return(nil, nil)

	_, err := svc.UpdateWebinar(context.Background(), id, &models.Webinar{Title: "New", Date: "2026-01-15", StartTime: "10:30"})
	assert.ErrorIs(t, err, db.ErrNotFound)
	deps.assertExpectations(t)
}

func TestDeleteWebinarService(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("811")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)
	deps.db.On("DeleteWebinar", existing.ID).Return(nilTx, nil)
	deps.zoom.On("DeleteWebinar", mock.Anything, "811").Return(nil)
	deps.db.On("CommitTransaction", nilTx).Return(nil)
	deps.expectEvent(models.ActionDeleted)

	r := httptest.NewRequest(http.MethodDelete, "/api/webinars/"+existing.ID.String(), nil)
	r = mux.SetURLVars(r, map[string]string{"webinar-id": existing.ID.String()})
	rec := httptest.NewRecorder()

	DeleteWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	deps.assertExpectations(t)
}

func TestDeleteWebinar_RollsBackOnZoomFailure(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("811")

	deps.db.On("GetWebinar", existing.ID).Return(existing, nil)
	deps.db.On("DeleteWebinar", existing.ID).Return(nilTx, nil)
	deps.zoom.On("DeleteWebinar", mock.Anything, "811").
		Return(&zoom.APIError{Op: "Failed to delete webinar", Status: 400, Body: "error"})
	deps.db.On("RollbackTransaction", nilTx).Return(nil)

	err := svc.DeleteWebinar(context.Background(), existing.ID)
	assert.Error(t, err)
	deps.db.AssertNotCalled(t, "CommitTransaction", mock.Anything)
	deps.assertExpectations(t)
}

func TestDeleteWebinarService_InvalidID(t *testing.T) {
	svc, deps := newTestService(t)

	r := httptest.NewRequest(http.MethodDelete, "/api/webinars/not-a-uuid", nil)
	r = mux.SetURLVars(r, map[string]string{"webinar-id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	DeleteWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	deps.assertExpectations(t)
}

func TestImportWebinar_AlreadyImported(t *testing.T) {
	svc, deps := newTestService(t)
	existing := existingWebinar("811")

	deps.db.On("GetWebinarByZoomID", "811").Return(existing, nil)

	wb, created, err := svc.ImportWebinar(context.Background(), "811")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, wb.ID)
	deps.zoom.AssertNotCalled(t, "GetWebinar", mock.Anything, mock.Anything)
	deps.assertExpectations(t)
}

func TestImportWebinarService(t *testing.T) {
	svc, deps := newTestService(t)

	deps.db.On("GetWebinarByZoomID", "822").Return(nil, nil)
	deps.zoom.On("GetWebinar", mock.Anything, "822").Return(&zoom.Webinar{
		ID:        "822",
		Topic:     "Imported",
		StartTime: "2026-07-01T13:00:00Z",
		Duration:  90,
		JoinURL:   "https://zoom.us/j/822",
	}, nil)
	deps.db.On("InsertWebinar", mock.MatchedBy(func(wb *models.Webinar) bool {
		return wb.Title == "Imported" &&
			wb.Agenda == "Imported" &&
			wb.Date == "2026-07-01" &&
			wb.StartTime == "14:00:00" &&
			wb.Duration == 5400 &&
			wb.ZoomWebinarID == "822" &&
			wb.ZoomLink == "https://zoom.us/j/822"
	})).Return(nil)
	deps.expectEvent(models.ActionImported)

	r := newJSONRequest(t, http.MethodPost, "/api/webinars/import", models.ImportWebinarRequest{WebinarID: "822"})
	rec := httptest.NewRecorder()

	ImportWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/api/webinars/")
	assert.NotContains(t, rec.Header().Get("Location"), "import")
	deps.assertExpectations(t)
}

func TestImportWebinar_DefaultDuration(t *testing.T) {
	svc, deps := newTestService(t)

	deps.db.On("GetWebinarByZoomID", "833").Return(nil, nil)
	deps.zoom.On("GetWebinar", mock.Anything, "833").Return(&zoom.Webinar{ID: "833", Topic: "T", Agenda: "A", StartTime: "2026-01-15T10:00:00Z"}, nil)
	deps.db.On("InsertWebinar", mock.Anything).Return(nil)
	deps.expectEvent(models.ActionImported)

	wb, created, err := svc.ImportWebinar(context.Background(), "833")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 3600, wb.Duration)
	assert.Equal(t, "A", wb.Agenda)
	deps.assertExpectations(t)
}

func TestImportWebinarService_MissingID(t *testing.T) {
	svc, deps := newTestService(t)

	r := newJSONRequest(t, http.MethodPost, "/api/webinars/import", map[string]string{})
	rec := httptest.NewRecorder()

	ImportWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	deps.assertExpectations(t)
}

func TestGetZoomWebinarsService(t *testing.T) {
	svc, deps := newTestService(t)

	deps.zoom.On("ListUpcomingWebinars", mock.Anything).Return([]zoom.Webinar{{ID: "1", Topic: "A"}, {ID: "2", Topic: "B"}}, nil)

	rec := httptest.NewRecorder()
	GetZoomWebinarsService(svc, rec, httptest.NewRequest(http.MethodGet, "/api/zoom/webinars", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse(t, rec).Data, 2)
	deps.assertExpectations(t)
}

func TestGetWebinarsService(t *testing.T) {
	svc, deps := newTestService(t)

	deps.db.On("ListWebinars").Return(nil, nil)

	rec := httptest.NewRecorder()
	GetWebinarsService(svc, rec, httptest.NewRequest(http.MethodGet, "/api/webinars", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, decodeResponse(t, rec).Data)
	deps.assertExpectations(t)
}

func TestGetWebinarService_DatabaseError(t *testing.T) {
	svc, deps := newTestService(t)
	id := uuid.New()

	deps.db.On("GetWebinar", id).Return(nil, errors.New("connection refused"))

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/webinars/"+id.String(), nil), map[string]string{"webinar-id": id.String()})
	rec := httptest.NewRecorder()
	GetWebinarService(svc, rec, r)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	deps.assertExpectations(t)
}
