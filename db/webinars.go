package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
)

const webinarColumns = `id, title, agenda, description, date::text, start_time::text, duration, template,
	send_zoom_registration_email, COALESCE(zoom_webinar_id, ''), zoom_link, attendance_synced, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWebinar(row rowScanner) (*models.Webinar, error) {
	var wb models.Webinar
	err := row.Scan(
		&wb.ID,
		&wb.Title,
		&wb.Agenda,
		&wb.Description,
		&wb.Date,
		&wb.StartTime,
		&wb.Duration,
		&wb.Template,
		&wb.SendZoomRegistrationEmail,
		&wb.ZoomWebinarID,
		&wb.ZoomLink,
		&wb.AttendanceSynced,
		&wb.CreatedAt,
		&wb.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &wb, nil
}

// InsertWebinar stores a new webinar. ID and timestamps are assigned here.
func (w *WebinarDB) InsertWebinar(wb *models.Webinar) error {
	tx, err := w.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	wb.ID = uuid.New()
	wb.CreatedAt = time.Now().UTC()
	wb.UpdatedAt = wb.CreatedAt

	_, err = w.execQuery(tx, `
		INSERT INTO webinars (id, title, agenda, description, date, start_time, duration, template,
			send_zoom_registration_email, zoom_webinar_id, zoom_link, attendance_synced, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13, $14)`,
		wb.ID, wb.Title, wb.Agenda, wb.Description, wb.Date, wb.StartTime, wb.Duration, wb.Template,
		wb.SendZoomRegistrationEmail, wb.ZoomWebinarID, wb.ZoomLink, wb.AttendanceSynced, wb.CreatedAt, wb.UpdatedAt)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error inserting webinar: %w", err)
	}

	return w.CommitTransaction(tx)
}

// GetWebinar retrieves a single webinar. A missing webinar yields nil, nil.
func (w *WebinarDB) GetWebinar(webinarID uuid.UUID) (*models.Webinar, error) {
	row := w.DB.QueryRow(`SELECT `+webinarColumns+` FROM webinars WHERE id = $1`, webinarID)

	wb, err := scanWebinar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning webinar: %w", err)
	}
	return wb, nil
}

// GetWebinarByZoomID retrieves the webinar linked to a Zoom webinar id.
// A missing webinar yields nil, nil.
func (w *WebinarDB) GetWebinarByZoomID(zoomWebinarID string) (*models.Webinar, error) {
	row := w.DB.QueryRow(`SELECT `+webinarColumns+` FROM webinars WHERE zoom_webinar_id = $1`, zoomWebinarID)

	wb, err := scanWebinar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning webinar: %w", err)
	}
	return wb, nil
}

// ListWebinars retrieves all webinars, most recent schedule first.
func (w *WebinarDB) ListWebinars() ([]models.Webinar, error) {
	return w.queryWebinars(`SELECT ` + webinarColumns + ` FROM webinars ORDER BY date DESC, start_time DESC`)
}

// ListWebinarsPendingAttendance retrieves webinars that exist on Zoom but
// have no attendance yet.
func (w *WebinarDB) ListWebinarsPendingAttendance() ([]models.Webinar, error) {
	return w.queryWebinars(`SELECT ` + webinarColumns + ` FROM webinars
		WHERE zoom_webinar_id IS NOT NULL AND NOT attendance_synced ORDER BY date, start_time`)
}

func (w *WebinarDB) queryWebinars(query string, args ...interface{}) ([]models.Webinar, error) {
	rows, err := w.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving webinars: %w", err)
	}
	defer rows.Close()

	var webinars []models.Webinar
	for rows.Next() {
		wb, err := scanWebinar(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning webinar: %w", err)
		}
		webinars = append(webinars, *wb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating webinars: %w", err)
	}
	return webinars, nil
}

// UpdateWebinar starts a transaction updating the editable fields of a
// webinar. The caller commits once Zoom accepted the change.
func (w *WebinarDB) UpdateWebinar(wb *models.Webinar) (*sql.Tx, error) {
	tx, err := w.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	wb.UpdatedAt = time.Now().UTC()

	affected, err := w.execQuery(tx, `
		UPDATE webinars
		SET title = $1, agenda = $2, description = $3, date = $4, start_time = $5, duration = $6,
			template = $7, send_zoom_registration_email = $8, updated_at = $9
		WHERE id = $10`,
		wb.Title, wb.Agenda, wb.Description, wb.Date, wb.StartTime, wb.Duration,
		wb.Template, wb.SendZoomRegistrationEmail, wb.UpdatedAt, wb.ID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error updating webinar: %w", err)
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrNotFound
	}

	return tx, nil
}

// DeleteWebinar starts a transaction deleting a webinar together with its
// registrations and attendance. The caller commits once Zoom deleted it.
func (w *WebinarDB) DeleteWebinar(webinarID uuid.UUID) (*sql.Tx, error) {
	tx, err := w.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	affected, err := w.execQuery(tx, `DELETE FROM webinars WHERE id = $1`, webinarID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error executing delete query: %w", err)
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrNotFound
	}

	return tx, nil
}
