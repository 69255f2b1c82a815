package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ScheduledWebinar is the Zoom webinar type for a one-off scheduled webinar.
const ScheduledWebinar = 5

// DefaultDurationMinutes is used whenever a webinar has no duration.
const DefaultDurationMinutes = 60

// Webinar is the subset of a Zoom webinar the service reads.
type Webinar struct {
	ID        json.Number `json:"id"`
	UUID      string      `json:"uuid,omitempty"`
	Topic     string      `json:"topic"`
	Agenda    string      `json:"agenda,omitempty"`
	Type      int         `json:"type,omitempty"`
	StartTime string      `json:"start_time,omitempty"`
	Duration  int         `json:"duration,omitempty"`
	Timezone  string      `json:"timezone,omitempty"`
	JoinURL   string      `json:"join_url,omitempty"`
}

// WebinarSettings are the settings sent when a webinar is created.
type WebinarSettings struct {
	HostVideo             bool   `json:"host_video"`
	PanelistsVideo        bool   `json:"panelists_video"`
	PracticeSession       bool   `json:"practice_session"`
	HDVideo               bool   `json:"hd_video"`
	ApprovalType          int    `json:"approval_type"`
	RegistrationType      int    `json:"registration_type"`
	Audio                 string `json:"audio"`
	AutoRecording         string `json:"auto_recording"`
	MeetingAuthentication bool   `json:"meeting_authentication"`
}

// CreateWebinarRequest is the body of a webinar creation.
type CreateWebinarRequest struct {
	Topic                        string          `json:"topic"`
	Agenda                       string          `json:"agenda"`
	Type                         int             `json:"type"`
	Duration                     int             `json:"duration"`
	StartTime                    string          `json:"start_time"`
	Settings                     WebinarSettings `json:"settings"`
	RegistrantsEmailNotification bool            `json:"registrants_email_notification"`
	TemplateID                   string          `json:"template_id,omitempty"`
}

// UpdateWebinarRequest is the body of a webinar update. Only the schedule
// and descriptive fields are kept in sync.
type UpdateWebinarRequest struct {
	Topic     string `json:"topic"`
	Agenda    string `json:"agenda"`
	Duration  int    `json:"duration"`
	StartTime string `json:"start_time"`
}

type webinarList struct {
	TotalRecords int       `json:"total_records"`
	Webinars     []Webinar `json:"webinars"`
}

// DefaultSettings returns the settings every created webinar uses:
// automatic approval, register once, both audio types, cloud recording.
func DefaultSettings() WebinarSettings {
	return WebinarSettings{
		HostVideo:             true,
		PanelistsVideo:        true,
		PracticeSession:       true,
		HDVideo:               true,
		ApprovalType:          0,
		RegistrationType:      1,
		Audio:                 "both",
		AutoRecording:         "cloud",
		MeetingAuthentication: false,
	}
}

// CreateWebinar schedules a new webinar for the authenticated user.
func (c *Client) CreateWebinar(ctx context.Context, req CreateWebinarRequest) (*Webinar, error) {
	var webinar Webinar
	err := c.makeRequest(ctx, http.MethodPost, "/users/me/webinars", req,
		http.StatusCreated, "Failed to create webinar on Zoom", &webinar)
	if err != nil {
		return nil, err
	}
	return &webinar, nil
}

// UpdateWebinar patches the webinar with the given Zoom id.
func (c *Client) UpdateWebinar(ctx context.Context, webinarID string, req UpdateWebinarRequest) error {
	return c.makeRequest(ctx, http.MethodPatch, "/webinars/"+url.PathEscape(webinarID), req,
		http.StatusNoContent, "Failed to update webinar on Zoom", nil)
}

// DeleteWebinar deletes the webinar with the given Zoom id.
func (c *Client) DeleteWebinar(ctx context.Context, webinarID string) error {
	return c.makeRequest(ctx, http.MethodDelete, "/webinars/"+url.PathEscape(webinarID), nil,
		http.StatusNoContent, "Failed to delete webinar", nil)
}

// GetWebinar fetches a webinar by its Zoom id.
func (c *Client) GetWebinar(ctx context.Context, webinarID string) (*Webinar, error) {
	var webinar Webinar
	err := c.makeRequest(ctx, http.MethodGet, "/webinars/"+url.PathEscape(webinarID), nil,
		http.StatusOK, "Failed to fetch webinar details", &webinar)
	if err != nil {
		return nil, err
	}
	return &webinar, nil
}

// ListUpcomingWebinars lists the first page of upcoming webinars of the
// authenticated user.
func (c *Client) ListUpcomingWebinars(ctx context.Context) ([]Webinar, error) {
	var list webinarList
	err := c.makeRequest(ctx, http.MethodGet, "/users/me/webinars?type=upcoming&page_size=300", nil,
		http.StatusOK, "Failed to fetch upcoming webinars", &list)
	if err != nil {
		return nil, err
	}
	if list.Webinars == nil {
		return []Webinar{}, nil
	}
	return list.Webinars, nil
}

// DurationMinutes converts a duration in seconds to whole minutes, using
// DefaultDurationMinutes when no duration is set.
func DurationMinutes(seconds int) int {
	if seconds <= 0 {
		return DefaultDurationMinutes
	}
	return seconds / 60
}

// FormatStartTime combines a local date (2006-01-02) and time of day
// (15:04 or 15:04:05) in loc into Zoom's UTC start_time.
func FormatStartTime(date, clock string, loc *time.Location) (string, error) {
	t, err := parseLocal(date, clock, loc)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(TimeFormat), nil
}

// SplitStartTime is the inverse of FormatStartTime: it returns the local
// date and time of day of a Zoom start_time.
func SplitStartTime(startTime string, loc *time.Location) (string, string, error) {
	t, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return "", "", fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	t = t.In(loc)
	return t.Format(time.DateOnly), t.Format(time.TimeOnly), nil
}

// ScheduledEnd returns the end of a local schedule.
func ScheduledEnd(date, clock string, durationSeconds int, loc *time.Location) (time.Time, error) {
	t, err := parseLocal(date, clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(DurationMinutes(durationSeconds)) * time.Minute), nil
}

func parseLocal(date, clock string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{time.DateTime, "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q or start time %q", date, clock)
}
