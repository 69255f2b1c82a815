package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/zoom-webinar-services/api/services"
)

// @Summary List webinar templates
// @Tags templates
// @Produce json
// @Success 200 {object} models.Response{data=[]models.WebinarTemplate}
// @Router /templates [get]
func GetTemplates(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetTemplatesService(svc, w, r)
	}
}

// @Summary Sync webinar templates
// @Description Store the Zoom webinar templates not known yet.
// @Tags templates
// @Produce json
// @Success 200 {object} models.Response{data=models.TemplateSyncResult}
// @Failure 403 {object} string
// @Failure 502 {object} models.Response
// @Router /templates/sync [post]
func SyncTemplates(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SyncTemplatesService(svc, w, r)
	}
}
