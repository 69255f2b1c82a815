package zoom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RegistrantRequest is the body used to register an attendee.
type RegistrantRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Registrant is Zoom's answer to a registration.
type Registrant struct {
	ID           json.Number `json:"id"`
	RegistrantID string      `json:"registrant_id"`
	JoinURL      string      `json:"join_url"`
	Topic        string      `json:"topic,omitempty"`
	StartTime    string      `json:"start_time,omitempty"`
}

// AddRegistrant registers an attendee for a webinar. A missing last name is
// sent as "N/A" since Zoom requires one.
func (c *Client) AddRegistrant(ctx context.Context, webinarID string, req RegistrantRequest) (*Registrant, error) {
	if req.LastName == "" {
		req.LastName = "N/A"
	}

	var registrant Registrant
	err := c.makeRequest(ctx, http.MethodPost, "/webinars/"+url.PathEscape(webinarID)+"/registrants", req,
		http.StatusCreated, "Failed to add registrant", &registrant)
	if err != nil {
		return nil, err
	}
	return &registrant, nil
}
