package services

import (
	"context"
	"database/sql"

	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockWebinarDB struct {
	mock.Mock
}

type MockZoomClient struct {
	mock.Mock
}

type MockUserDirectory struct {
	mock.Mock
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockWebinarDB) InsertWebinar(wb *models.Webinar) error {
	args := m.Called(wb)
	if args.Error(0) == nil && wb.ID == uuid.Nil {
		wb.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockWebinarDB) GetWebinar(webinarID uuid.UUID) (*models.Webinar, error) {
	args := m.Called(webinarID)
	wb, _ := args.Get(0).(*models.Webinar)
	return wb, args.Error(1)
}

func (m *MockWebinarDB) GetWebinarByZoomID(zoomWebinarID string) (*models.Webinar, error) {
	args := m.Called(zoomWebinarID)
	wb, _ := args.Get(0).(*models.Webinar)
	return wb, args.Error(1)
}

func (m *MockWebinarDB) ListWebinars() ([]models.Webinar, error) {
	args := m.Called()
	webinars, _ := args.Get(0).([]models.Webinar)
	return webinars, args.Error(1)
}

func (m *MockWebinarDB) ListWebinarsPendingAttendance() ([]models.Webinar, error) {
	args := m.Called()
	webinars, _ := args.Get(0).([]models.Webinar)
	return webinars, args.Error(1)
}

func (m *MockWebinarDB) UpdateWebinar(wb *models.Webinar) (*sql.Tx, error) {
	args := m.Called(wb)
	tx, _ := args.Get(0).(*sql.Tx)
	return tx, args.Error(1)
}

func (m *MockWebinarDB) DeleteWebinar(webinarID uuid.UUID) (*sql.Tx, error) {
	args := m.Called(webinarID)
	tx, _ := args.Get(0).(*sql.Tx)
	return tx, args.Error(1)
}

func (m *MockWebinarDB) CommitTransaction(tx *sql.Tx) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *MockWebinarDB) RollbackTransaction(tx *sql.Tx) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *MockWebinarDB) InsertRegistration(reg *models.Registration) error {
	args := m.Called(reg)
	if args.Error(0) == nil && reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockWebinarDB) GetRegistrations(webinarID uuid.UUID) ([]models.Registration, error) {
	args := m.Called(webinarID)
	registrations, _ := args.Get(0).([]models.Registration)
	return registrations, args.Error(1)
}

func (m *MockWebinarDB) GetRegistrationByEmail(webinarID uuid.UUID, email string) (*models.Registration, error) {
	args := m.Called(webinarID, email)
	reg, _ := args.Get(0).(*models.Registration)
	return reg, args.Error(1)
}

func (m *MockWebinarDB) SaveAttendance(webinarID uuid.UUID, records []models.AttendanceRecord) (int, error) {
	args := m.Called(webinarID, records)
	return args.Int(0), args.Error(1)
}

func (m *MockWebinarDB) GetAttendance(webinarID uuid.UUID) ([]models.AttendanceRecord, error) {
	args := m.Called(webinarID)
	records, _ := args.Get(0).([]models.AttendanceRecord)
	return records, args.Error(1)
}

func (m *MockWebinarDB) InsertTemplateIfMissing(tmpl *models.WebinarTemplate) (bool, error) {
	args := m.Called(tmpl)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebinarDB) ListTemplates() ([]models.WebinarTemplate, error) {
	args := m.Called()
	templates, _ := args.Get(0).([]models.WebinarTemplate)
	return templates, args.Error(1)
}

func (m *MockZoomClient) CreateWebinar(ctx context.Context, req zoom.CreateWebinarRequest) (*zoom.Webinar, error) {
	args := m.Called(ctx, req)
	wb, _ := args.Get(0).(*zoom.Webinar)
	return wb, args.Error(1)
}

func (m *MockZoomClient) UpdateWebinar(ctx context.Context, webinarID string, req zoom.UpdateWebinarRequest) error {
	args := m.Called(ctx, webinarID, req)
	return args.Error(0)
}

func (m *MockZoomClient) DeleteWebinar(ctx context.Context, webinarID string) error {
	args := m.Called(ctx, webinarID)
	return args.Error(0)
}

func (m *MockZoomClient) GetWebinar(ctx context.Context, webinarID string) (*zoom.Webinar, error) {
	args := m.Called(ctx, webinarID)
	wb, _ := args.Get(0).(*zoom.Webinar)
	return wb, args.Error(1)
}

func (m *MockZoomClient) ListUpcomingWebinars(ctx context.Context) ([]zoom.Webinar, error) {
	args := m.Called(ctx)
	webinars, _ := args.Get(0).([]zoom.Webinar)
	return webinars, args.Error(1)
}

func (m *MockZoomClient) AddRegistrant(ctx context.Context, webinarID string, req zoom.RegistrantRequest) (*zoom.Registrant, error) {
	args := m.Called(ctx, webinarID, req)
	registrant, _ := args.Get(0).(*zoom.Registrant)
	return registrant, args.Error(1)
}

func (m *MockZoomClient) ListWebinarTemplates(ctx context.Context) ([]zoom.Template, error) {
	args := m.Called(ctx)
	templates, _ := args.Get(0).([]zoom.Template)
	return templates, args.Error(1)
}

func (m *MockZoomClient) GetAttendanceDetails(ctx context.Context, webinarID string) ([]zoom.AttendanceSummary, error) {
	args := m.Called(ctx, webinarID)
	summaries, _ := args.Get(0).([]zoom.AttendanceSummary)
	return summaries, args.Error(1)
}

func (m *MockUserDirectory) GetUser(username string) (*models.User, error) {
	args := m.Called(username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockEventPublisher) Notify(ctx context.Context, event models.WebinarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}
