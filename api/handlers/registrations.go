package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/zoom-webinar-services/api/services"
)

// @Summary Register for a webinar
// @Description Register a user for a webinar on Zoom. The user defaults to the token owner; only administrators may register other users.
// @Tags registrations
// @Accept json
// @Produce json
// @Param webinar-id path string true "Webinar ID"
// @Param request body models.RegistrationRequest false "User to register"
// @Success 201 {object} models.Response{data=models.Registration}
// @Failure 400 {object} models.Response
// @Failure 401 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 409 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /webinars/{webinar-id}/registrations [post]
func Register(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.RegisterService(svc, w, r)
	}
}

// @Summary List registrations
// @Tags registrations
// @Produce json
// @Param webinar-id path string true "Webinar ID"
// @Success 200 {object} models.Response{data=[]models.Registration}
// @Failure 403 {object} string
// @Failure 404 {object} models.Response
// @Router /webinars/{webinar-id}/registrations [get]
func GetRegistrations(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetRegistrationsService(svc, w, r)
	}
}
