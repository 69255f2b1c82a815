package handlers

import (
	"net/http"

	services "github.com/EO-DataHub/zoom-webinar-services/api/services"
)

// @Summary Sync attendance
// @Description Fetch the participant report of a past webinar from Zoom and store one record per attendee.
// @Tags attendance
// @Produce json
// @Param webinar-id path string true "Webinar ID"
// @Success 200 {object} models.Response{data=models.AttendanceSyncResult}
// @Failure 400 {object} models.Response
// @Failure 403 {object} string
// @Failure 404 {object} models.Response
// @Failure 422 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /webinars/{webinar-id}/attendance/sync [post]
func SyncAttendance(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SyncAttendanceService(svc, w, r)
	}
}

// @Summary List attendance
// @Tags attendance
// @Produce json
// @Param webinar-id path string true "Webinar ID"
// @Success 200 {object} models.Response{data=[]models.AttendanceRecord}
// @Failure 403 {object} string
// @Failure 404 {object} models.Response
// @Router /webinars/{webinar-id}/attendance [get]
func GetAttendance(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetAttendanceService(svc, w, r)
	}
}
