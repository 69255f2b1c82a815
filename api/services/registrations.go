package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/EO-DataHub/zoom-webinar-services/db"
	"github.com/EO-DataHub/zoom-webinar-services/internal/authn"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegisterUser registers a user for a webinar on Zoom and records the
// registration. The user defaults to the caller; only admins may register
// someone else.
func (s *Service) RegisterUser(ctx context.Context, webinarID uuid.UUID, claims authn.Claims, req models.RegistrationRequest) (*models.Registration, error) {
	logger := zerolog.Ctx(ctx).With().Str("webinar_id", webinarID.String()).Logger()

	if claims.Username == "" {
		return nil, ErrGuestUser
	}

	self := req.User == "" || req.User == claims.Username
	if !self && !claims.HasRole(s.adminRole()) {
		logger.Warn().Str("requested_by", claims.Username).Str("user", req.User).Msg("Access denied: cannot register other users")
		return nil, ErrForbidden
	}

	wb, err := s.DB.GetWebinar(webinarID)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, db.ErrNotFound
	}
	if wb.ZoomWebinarID == "" {
		return nil, ErrNotOnZoom
	}

	user, err := s.resolveUser(claims, req.User, self)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to look up user")
		return nil, err
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: user %s has no email address", ErrInvalidInput, user.Username)
	}

	existing, err := s.DB.GetRegistrationByEmail(wb.ID, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s is already registered", ErrConflict, user.Email)
	}

	registrant, err := s.Zoom.AddRegistrant(ctx, wb.ZoomWebinarID, zoom.RegistrantRequest{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		logger.Error().Err(err).Str("zoom_webinar_id", wb.ZoomWebinarID).Msg("Failed to add registrant on Zoom")
		return nil, err
	}

	reg := models.Registration{
		Webinar:       wb.ID,
		User:          user.Email,
		ZoomWebinarID: registrant.ID.String(),
		RegistrantID:  registrant.RegistrantID,
		JoinURL:       registrant.JoinURL,
	}
	if reg.ZoomWebinarID == "" {
		reg.ZoomWebinarID = wb.ZoomWebinarID
	}

	if err := s.DB.InsertRegistration(&reg); err != nil {
		logger.Error().Err(err).Msg("Failed to insert registration into database")
		return nil, err
	}

	logger.Info().Str("registration_id", reg.ID.String()).Msg("User registered successfully")
	s.publish(ctx, wb, models.ActionRegistered)
	return &reg, nil
}

// resolveUser returns the details of the user to register. The caller's
// token is used when it carries an email, the directory otherwise.
func (s *Service) resolveUser(claims authn.Claims, username string, self bool) (*models.User, error) {
	if self {
		if claims.Email != "" {
			return &models.User{
				ID:        claims.Subject,
				Username:  claims.Username,
				FirstName: claims.GivenName,
				LastName:  claims.FamilyName,
				Email:     claims.Email,
			}, nil
		}
		username = claims.Username
	}

	if s.Users == nil {
		return nil, errors.New("user directory is not configured")
	}
	return s.Users.GetUser(username)
}

// GetRegistrations lists the registrations of a webinar.
func (s *Service) GetRegistrations(webinarID uuid.UUID) ([]models.Registration, error) {
	if _, err := s.GetWebinar(webinarID); err != nil {
		return nil, err
	}

	registrations, err := s.DB.GetRegistrations(webinarID)
	if err != nil {
		return nil, err
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}
	return registrations, nil
}

// RegisterService handles POST /webinars/{webinar-id}/registrations.
func RegisterService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		HandleErrResponse(w, http.StatusUnauthorized, errors.New("unauthorized: invalid claims"))
		return
	}

	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	// An empty body registers the caller
	var payload models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	reg, err := svc.RegisterUser(r.Context(), webinarID, claims, payload)
	if err != nil {
		WriteError(w, err)
		return
	}

	location := fmt.Sprintf("%s/%s", r.URL.Path, reg.ID)
	HandleSuccessResponse(w, http.StatusCreated, reg, location)
}

// GetRegistrationsService handles GET /webinars/{webinar-id}/registrations.
func GetRegistrationsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	registrations, err := svc.GetRegistrations(webinarID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("webinar_id", webinarID.String()).Msg("Failed to retrieve registrations")
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, registrations)
}
