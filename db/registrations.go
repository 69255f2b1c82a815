package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
)

// InsertRegistration stores a submitted registration.
func (w *WebinarDB) InsertRegistration(reg *models.Registration) error {
	tx, err := w.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	reg.ID = uuid.New()
	reg.CreatedAt = time.Now().UTC()

	_, err = w.execQuery(tx, `
		INSERT INTO webinar_registrations (id, webinar_id, user_email, zoom_webinar_id, registrant_id, join_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reg.ID, reg.Webinar, reg.User, reg.ZoomWebinarID, reg.RegistrantID, reg.JoinURL, reg.CreatedAt)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error inserting registration: %w", err)
	}

	return w.CommitTransaction(tx)
}

// GetRegistrations retrieves all registrations of a webinar.
func (w *WebinarDB) GetRegistrations(webinarID uuid.UUID) ([]models.Registration, error) {
	rows, err := w.DB.Query(`
		SELECT id, webinar_id, user_email, zoom_webinar_id, registrant_id, join_url, created_at
		FROM webinar_registrations WHERE webinar_id = $1 ORDER BY created_at`, webinarID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	defer rows.Close()

	var registrations []models.Registration
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.ID, &reg.Webinar, &reg.User, &reg.ZoomWebinarID,
			&reg.RegistrantID, &reg.JoinURL, &reg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning registration: %w", err)
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

// GetRegistrationByEmail retrieves the registration of a user for a webinar.
// A missing registration yields nil, nil.
func (w *WebinarDB) GetRegistrationByEmail(webinarID uuid.UUID, email string) (*models.Registration, error) {
	row := w.DB.QueryRow(`
		SELECT id, webinar_id, user_email, zoom_webinar_id, registrant_id, join_url, created_at
		FROM webinar_registrations WHERE webinar_id = $1 AND user_email = $2`, webinarID, email)

	var reg models.Registration
	if err := row.Scan(&reg.ID, &reg.Webinar, &reg.User, &reg.ZoomWebinarID,
		&reg.RegistrantID, &reg.JoinURL, &reg.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning registration: %w", err)
	}
	return &reg, nil
}
