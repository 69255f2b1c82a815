package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration is a user signed up for a webinar on Zoom.
type Registration struct {
	ID            uuid.UUID `json:"id"`
	Webinar       uuid.UUID `json:"webinar"`
	User          string    `json:"user"`
	ZoomWebinarID string    `json:"zoomWebinarId,omitempty"`
	RegistrantID  string    `json:"registrantId,omitempty"`
	JoinURL       string    `json:"joinUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RegistrationRequest is the payload of a registration. User is a username
// and defaults to the caller.
type RegistrationRequest struct {
	User string `json:"user,omitempty"`
}
