package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/EO-DataHub/zoom-webinar-services/api/middleware"
	"github.com/EO-DataHub/zoom-webinar-services/db"
	"github.com/EO-DataHub/zoom-webinar-services/internal/authn"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
	ErrForbidden    = errors.New("forbidden: administrator use only")
	ErrGuestUser    = errors.New("guest users cannot register for webinars")
	ErrNotOnZoom    = errors.New("Webinar not created on Zoom yet.")
)

const uniqueViolation = "23505"

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// HandleSuccessResponse wraps data in the response envelope.
func HandleSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}, location ...string) {
	WriteResponse(w, statusCode, models.Response{Success: 1, Data: data}, location...)
}

// HandleErrResponse writes err in the response envelope with the given status.
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	var pqErr *pq.Error
	var apiErr *zoom.APIError
	var validationErrs validator.ValidationErrors
	var response models.Response

	switch {
	case errors.As(err, &pqErr):
		response = models.Response{
			Success:      0,
			ErrorCode:    pqErr.Code.Name(),
			ErrorDetails: pqErr.Message,
		}
	case errors.As(err, &apiErr):
		response = models.Response{
			Success:      0,
			Message:      apiErr.Op,
			ErrorDetails: apiErr.Body,
		}
	case errors.As(err, &validationErrs):
		response = models.Response{
			Success:      0,
			Message:      "Invalid request payload",
			ErrorDetails: describeValidation(validationErrs),
		}
	default:
		response = models.Response{
			Success:      0,
			ErrorDetails: err.Error(),
		}
	}

	WriteResponse(w, statusCode, response)
}

// WriteError maps err to its HTTP status and writes it.
func WriteError(w http.ResponseWriter, err error) {
	HandleErrResponse(w, StatusFromError(err), err)
}

// StatusFromError returns the HTTP status an error is reported with.
func StatusFromError(err error) int {
	var pqErr *pq.Error
	var apiErr *zoom.APIError
	var httpErr *HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotOnZoom):
		return http.StatusBadRequest
	case errors.Is(err, ErrGuestUser):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, zoom.ErrTooManyParticipants):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.As(err, &pqErr):
		if pqErr.Code == uniqueViolation {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	case errors.As(err, &httpErr):
		if httpErr.Status == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func describeValidation(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// claimsFromRequest returns the claims set by JWTMiddleware.
func claimsFromRequest(r *http.Request) (authn.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ClaimsKey).(authn.Claims)
	return claims, ok
}

func webinarIDFromRequest(r *http.Request) (uuid.UUID, error) {
	webinarID, err := uuid.Parse(mux.Vars(r)["webinar-id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid webinar id", ErrInvalidInput)
	}
	return webinarID, nil
}
