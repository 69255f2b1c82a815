package models

import (
	"time"

	"github.com/google/uuid"
)

// Webinar is the local record mirrored to a Zoom webinar.
type Webinar struct {
	ID                        uuid.UUID `json:"id"`
	Title                     string    `json:"title" validate:"required"`
	Agenda                    string    `json:"agenda,omitempty"`
	Description               string    `json:"description,omitempty"`
	Date                      string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime                 string    `json:"startTime" validate:"required"`
	Duration                  int       `json:"duration" validate:"gte=0"`
	Template                  string    `json:"template,omitempty"`
	SendZoomRegistrationEmail bool      `json:"sendZoomRegistrationEmail"`
	ZoomWebinarID             string    `json:"zoomWebinarId,omitempty"`
	ZoomLink                  string    `json:"zoomLink,omitempty"`
	AttendanceSynced          bool      `json:"attendanceSynced"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

// ImportWebinarRequest identifies an existing Zoom webinar to import.
type ImportWebinarRequest struct {
	WebinarID string `json:"webinarId" validate:"required"`
}

// WebinarEvent is published after every successful lifecycle change.
type WebinarEvent struct {
	WebinarID     uuid.UUID `json:"webinarId"`
	ZoomWebinarID string    `json:"zoomWebinarId,omitempty"`
	Action        string    `json:"action"`
	Timestamp     int64     `json:"timestamp"`
}

const (
	ActionCreated          = "created"
	ActionUpdated          = "updated"
	ActionDeleted          = "deleted"
	ActionImported         = "imported"
	ActionRegistered       = "registered"
	ActionAttendanceSynced = "attendance-synced"
)
