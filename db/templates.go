package db

import (
	"fmt"

	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/google/uuid"
)

// InsertTemplateIfMissing stores a template unless its Zoom id is already
// known. It reports whether a row was inserted.
func (w *WebinarDB) InsertTemplateIfMissing(tmpl *models.WebinarTemplate) (bool, error) {
	tx, err := w.DB.Begin()
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}

	if tmpl.ID == uuid.Nil {
		tmpl.ID = uuid.New()
	}

	affected, err := w.execQuery(tx, `
		INSERT INTO webinar_templates (id, zoom_template_id, title, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (zoom_template_id) DO NOTHING`,
		tmpl.ID, tmpl.ZoomTemplateID, tmpl.Title, tmpl.Type)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("error inserting template: %w", err)
	}

	if err := w.CommitTransaction(tx); err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListTemplates retrieves every stored webinar template.
func (w *WebinarDB) ListTemplates() ([]models.WebinarTemplate, error) {
	rows, err := w.DB.Query(`SELECT id, zoom_template_id, title, type FROM webinar_templates ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving templates: %w", err)
	}
	defer rows.Close()

	var templates []models.WebinarTemplate
	for rows.Next() {
		var tmpl models.WebinarTemplate
		if err := rows.Scan(&tmpl.ID, &tmpl.ZoomTemplateID, &tmpl.Title, &tmpl.Type); err != nil {
			return nil, fmt.Errorf("error scanning template: %w", err)
		}
		templates = append(templates, tmpl)
	}
	return templates, rows.Err()
}
