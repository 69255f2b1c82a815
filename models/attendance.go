package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is the aggregated participation of one attendee.
type AttendanceRecord struct {
	ID            uuid.UUID  `json:"id"`
	Webinar       uuid.UUID  `json:"webinar"`
	Registration  *uuid.UUID `json:"registration,omitempty"`
	UserEmail     string     `json:"userEmail"`
	Name          string     `json:"name"`
	TotalDuration int        `json:"totalDuration"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// AttendanceSyncResult reports the outcome of an attendance sync.
type AttendanceSyncResult struct {
	Webinar   uuid.UUID `json:"webinar"`
	Attendees int       `json:"attendees"`
	Inserted  int       `json:"inserted"`
}
