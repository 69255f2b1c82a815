package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/EO-DataHub/zoom-webinar-services/db"
	"github.com/EO-DataHub/zoom-webinar-services/internal/zoom"
	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SyncAttendance fetches the participant report of a past webinar from Zoom
// and stores one record per attendee. Attendees already stored are kept.
func (s *Service) SyncAttendance(ctx context.Context, webinarID uuid.UUID) (*models.AttendanceSyncResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("webinar_id", webinarID.String()).Logger()

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

	summaries, err := s.Zoom.GetAttendanceDetails(ctx, wb.ZoomWebinarID)
	if err != nil {
		logger.Error().Err(err).Str("zoom_webinar_id", wb.ZoomWebinarID).Msg("Failed to fetch attendance from Zoom")
		return nil, err
	}

	records := make([]models.AttendanceRecord, 0, len(summaries))
	for _, summary := range summaries {
		rec := models.AttendanceRecord{
			UserEmail:     summary.UserEmail,
			Name:          summary.Name,
			TotalDuration: summary.TotalDuration,
		}

		reg, err := s.DB.GetRegistrationByEmail(wb.ID, summary.UserEmail)
		if err != nil {
			return nil, err
		}
		if reg != nil {
			id := reg.ID
			rec.Registration = &id
		}
		records = append(records, rec)
	}

	inserted, err := s.DB.SaveAttendance(wb.ID, records)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save attendance")
		return nil, err
	}

	logger.Info().Int("attendees", len(records)).Int("inserted", inserted).Msg("Attendance synced successfully")
	s.publish(ctx, wb, models.ActionAttendanceSynced)

	return &models.AttendanceSyncResult{
		Webinar:   wb.ID,
		Attendees: len(records),
		Inserted:  inserted,
	}, nil
}

// SyncPendingAttendance syncs every webinar on Zoom that has ended before
// now and has no attendance yet. A failing webinar does not stop the others;
// all failures are returned joined.
func (s *Service) SyncPendingAttendance(ctx context.Context, now time.Time) ([]models.AttendanceSyncResult, error) {
	logger := zerolog.Ctx(ctx)

	pending, err := s.DB.ListWebinarsPendingAttendance()
	if err != nil {
		return nil, err
	}

	var results []models.AttendanceSyncResult
	var errs []error
	for _, wb := range pending {
		end, err := zoom.ScheduledEnd(wb.Date, wb.StartTime, wb.Duration, s.Location)
		if err != nil {
			logger.Warn().Err(err).Str("webinar_id", wb.ID.String()).Msg("Skipping webinar with invalid schedule")
			continue
		}
		if end.After(now) {
			continue
		}

		result, err := s.SyncAttendance(ctx, wb.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, *result)
	}

	return results, errors.Join(errs...)
}

// GetAttendance lists the attendance records of a webinar.
func (s *Service) GetAttendance(webinarID uuid.UUID) ([]models.AttendanceRecord, error) {
	if _, err := s.GetWebinar(webinarID); err != nil {
		return nil, err
	}

	records, err := s.DB.GetAttendance(webinarID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return records, nil
}

// SyncAttendanceService handles POST /webinars/{webinar-id}/attendance/sync.
func SyncAttendanceService(svc *Service, w http.ResponseWriter, r *http.Request) {
	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := svc.SyncAttendance(r.Context(), webinarID)
	if err != nil {
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, result)
}

// GetAttendanceService handles GET /webinars/{webinar-id}/attendance.
func GetAttendanceService(svc *Service, w http.ResponseWriter, r *http.Request) {
	webinarID, err := webinarIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	records, err := svc.GetAttendance(webinarID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("webinar_id", webinarID.String()).Msg("Failed to retrieve attendance")
		WriteError(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, records)
}
