package zoom

import (
	"context"
	"net/http"
)

// Template is a webinar template defined in the Zoom account.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

type templateList struct {
	TotalRecords int        `json:"total_records"`
	Templates    []Template `json:"templates"`
}

// ListWebinarTemplates lists the webinar templates of the authenticated user.
func (c *Client) ListWebinarTemplates(ctx context.Context) ([]Template, error) {
	var list templateList
	err := c.makeRequest(ctx, http.MethodGet, "/users/me/webinar_templates", nil,
		http.StatusOK, "Failed to fetch webinar templates", &list)
	if err != nil {
		return nil, err
	}
	return list.Templates, nil
}
