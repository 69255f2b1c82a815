package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/zoom-webinar-services/api/services"
)

// @Summary List webinars
// @Description List all webinars known locally, most recent first.
// @Tags webinars
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Webinar}
// @Failure 401 {object} string
// @Failure 500 {object} models.Response
// @Router /webinars [get]
func GetWebinars(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetWebinarsService(svc, w, r)
	}
}

// @Summary Create a webinar
// @Description Schedule a webinar on Zoom and store it. A webinar sent with a zoomWebinarId is stored without contacting Zoom.
// @Tags webinars
// @Accept json
// @Produce json
// @Param webinar body models.Webinar true "Webinar"
// @Success 201 {object} models.Response{data=models.Webinar}
// @Failure 400 {object} models.Response
// @Failure 401 {object} string
// @Failure 403 {object} string
// @Failure 502 {object} models.Response
// @Router /webinars [post]
func CreateWebinar(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateWebinarService(svc, w, r)
	}
}

// @Summary Get a webinar
// @Tags webinars
// @Produce json
// @Param webinar-id path string true "Webinar ID"
// @Success 200 {object} models.Response{data=models.Webinar}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /webinars/{webinar-id} [get]
func GetWebinar(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetWebinarService(svc, w, r)
	}
}

// @Summary Update a webinar
// @Description Update a webinar and its schedule on Zoom. The change is not stored if Zoom rejects it.
// @Tags webinars
// @Accept json
// @Produce json
// @Param webinar-id path string true "Webinar ID"
// @Param webinar body models.Webinar true "Webinar"
// @Success 200 {object} models.Response{data=models.Webinar}
// @Failure 400 {object} models.Response
// @Failure 403 {object} string
// @Failure 404 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /webinars/{webinar-id} [put]
func UpdateWebinar(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateWebinarService(svc, w, r)
	}
}

// @Summary Delete a webinar
// @Description Delete a webinar locally and on Zoom, together with its registrations and attendance.
// @Tags webinars
// @Param webinar-id path string true "Webinar ID"
// @Success 204
// @Failure 403 {object} string
// @Failure 404 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /webinars/{webinar-id} [delete]
func DeleteWebinar(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteWebinarService(svc, w, r)
	}
}

// @Summary Import a Zoom webinar
// @Description Link an existing Zoom webinar to a new local webinar. An already imported webinar is returned with status 200.
// @Tags webinars
// @Accept json
// @Produce json
// @Param request body models.ImportWebinarRequest true "Zoom webinar"
// @Success 200 {object} models.Response{data=models.Webinar}
// @Success 201 {object} models.Response{data=models.Webinar}
// @Failure 400 {object} models.Response
// @Failure 403 {object} string
// @Failure 502 {object} models.Response
// @Router /webinars/import [post]
func ImportWebinar(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ImportWebinarService(svc, w, r)
	}
}

// @Summary List upcoming Zoom webinars
// @Description List the upcoming webinars of the Zoom account, for picking one to import.
// @Tags zoom
// @Produce json
// @Success 200 {object} models.Response{data=[]zoom.Webinar}
// @Failure 403 {object} string
// @Failure 502 {object} models.Response
// @Router /zoom/webinars [get]
func GetZoomWebinars(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetZoomWebinarsService(svc, w, r)
	}
}
