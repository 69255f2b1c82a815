package db

import (
	"fmt"
	"time"

	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
)

// SaveAttendance inserts attendance records and marks the webinar as synced
// in one transaction. Records for an email already stored are skipped. It
// returns the number of inserted records.
func (w *WebinarDB) SaveAttendance(webinarID uuid.UUID, records []models.AttendanceRecord) (int, error) {
	tx, err := w.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}

	// Rollback transaction if an error occurs
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	inserted := 0
	for i := range records {
		rec := &records[i]
		rec.ID = uuid.New()
		rec.Webinar = webinarID
		rec.CreatedAt = now

		var affected int64
		affected, err = w.execQuery(tx, `
			INSERT INTO webinar_attendance_records (id, webinar_id, registration_id, user_email, name, total_duration, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (webinar_id, user_email) DO NOTHING`,
			rec.ID, rec.Webinar, rec.Registration, rec.UserEmail, rec.Name, rec.TotalDuration, rec.CreatedAt)
		if err != nil {
			return 0, fmt.Errorf("error inserting attendance record: %w", err)
		}
		inserted += int(affected)
	}

	var affected int64
	affected, err = w.execQuery(tx, `UPDATE webinars SET attendance_synced = TRUE, updated_at = $1 WHERE id = $2`, now, webinarID)
	if err != nil {
		return 0, fmt.Errorf("error marking attendance synced: %w", err)
	}
	if affected == 0 {
		err = ErrNotFound
		return 0, err
	}

	if err = w.CommitTransaction(tx); err != nil {
		return 0, err
	}

	return inserted, nil
}

// GetAttendance retrieves the attendance records of a webinar, longest
// attendance first.
func (w *WebinarDB) GetAttendance(webinarID uuid.UUID) ([]models.AttendanceRecord, error) {
	rows, err := w.DB.Query(`
		SELECT id, webinar_id, registration_id, user_email, name, total_duration, created_at
		FROM webinar_attendance_records WHERE webinar_id = $1
		ORDER BY total_duration DESC, user_email`, webinarID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		var registration uuid.NullUUID
		if err := rows.Scan(&rec.ID, &rec.Webinar, &registration, &rec.UserEmail,
			&rec.Name, &rec.TotalDuration, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		if registration.Valid {
			id := registration.UUID
			rec.Registration = &id
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
