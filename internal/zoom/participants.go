package zoom

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
)

// MaxParticipants is the largest report that is aggregated. Larger reports
// would need pagination.
const MaxParticipants = 1000

var ErrTooManyParticipants = fmt.Errorf("attendance details exceed the limit of %d participants, pagination not implemented", MaxParticipants)

// Participant is one session of one attendee in a past webinar. The same
// person joining twice yields two participants.
type Participant struct {
	ID           string `json:"id,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Name         string `json:"name"`
	UserEmail    string `json:"user_email"`
	JoinTime     string `json:"join_time,omitempty"`
	LeaveTime    string `json:"leave_time,omitempty"`
	Duration     int    `json:"duration"`
	RegistrantID string `json:"registrant_id,omitempty"`
}

// ParticipantReport is the participant list of a past webinar.
type ParticipantReport struct {
	PageCount     int           `json:"page_count"`
	PageSize      int           `json:"page_size"`
	TotalRecords  int           `json:"total_records"`
	NextPageToken string        `json:"next_page_token,omitempty"`
	Participants  []Participant `json:"participants"`
}

// AttendanceSummary is the participation of one attendee summed over all
// sessions, in seconds.
type AttendanceSummary struct {
	UserEmail     string `json:"user_email"`
	Name          string `json:"name"`
	RegistrantID  string `json:"registrant_id,omitempty"`
	TotalDuration int    `json:"total_duration"`
}

// ListPastParticipants fetches the first page of participants of a past
// webinar.
func (c *Client) ListPastParticipants(ctx context.Context, webinarID string, pageSize int) (*ParticipantReport, error) {
	path := fmt.Sprintf("/past_webinars/%s/participants?page_size=%d", url.PathEscape(webinarID), pageSize)

	var report ParticipantReport
	err := c.makeRequest(ctx, http.MethodGet, path, nil,
		http.StatusOK, "Failed to fetch webinar attendance details", &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetAttendanceDetails fetches the participant report of a past webinar and
// aggregates it per attendee.
func (c *Client) GetAttendanceDetails(ctx context.Context, webinarID string) ([]AttendanceSummary, error) {
	report, err := c.ListPastParticipants(ctx, webinarID, MaxParticipants)
	if err != nil {
		return nil, err
	}
	return SummarizeAttendance(report)
}

// SummarizeAttendance groups sessions by email, sums their durations and
// sorts the result by total duration, longest first. Name and registrant id
// are taken from the first session seen. Sessions without an email are
// skipped.
func SummarizeAttendance(report *ParticipantReport) ([]AttendanceSummary, error) {
	if report == nil {
		return nil, errors.New("missing participant report")
	}
	if report.TotalRecords > MaxParticipants || len(report.Participants) > MaxParticipants {
		return nil, ErrTooManyParticipants
	}

	index := make(map[string]int)
	summaries := []AttendanceSummary{}
	for _, p := range report.Participants {
		if p.UserEmail == "" {
			continue
		}
		i, ok := index[p.UserEmail]
		if !ok {
			i = len(summaries)
			index[p.UserEmail] = i
			summaries = append(summaries, AttendanceSummary{
				UserEmail:    p.UserEmail,
				Name:         p.Name,
				RegistrantID: p.RegistrantID,
			})
		}
		summaries[i].TotalDuration += p.Duration
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].TotalDuration > summaries[b].TotalDuration
	})

	return summaries, nil
}
