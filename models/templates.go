package models

import "github.com/google/uuid"

// WebinarTemplate is a Zoom webinar template known locally.
type WebinarTemplate struct {
	ID             uuid.UUID `json:"id"`
	ZoomTemplateID string    `json:"zoomTemplateId"`
	Title          string    `json:"title"`
	Type           int       `json:"type"`
}

// TemplateSyncResult reports how many templates a sync added.
type TemplateSyncResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
}
