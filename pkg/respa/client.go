// pkg/respa/client.go

package respa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"courtwatch/pkg/models"
)

// resourceResponse represents the JSON structure of a Respa resource with
// availability data included.
type resourceResponse struct {
	OpeningHours []openingHour `json:"opening_hours"`
	Reservations []reservation `json:"reservations"`
}

// openingHour is one calendar date's opening window. Opens and Closes are
// null when the facility is closed that day.
type openingHour struct {
	Date   string  `json:"date"`
	Opens  *string `json:"opens"`
	Closes *string `json:"closes"`
}

type reservation struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

// Client handles fetching and parsing of resource availability data
type Client struct {
	config     *models.Config
	httpClient *http.Client
}

// NewClient creates a new source API client instance
func NewClient(config *models.Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Source.TimeoutSeconds) * time.Second,
		},
	}
}

// FetchWindows retrieves opening windows and reservations for the configured
// resource over the lookahead span starting now. Closed dates (null opens or
// closes) are excluded; windows whose start is not before their end are
// dropped. Any unparseable timestamp fails the whole fetch so malformed data
// never reaches the availability computation.
func (c *Client) FetchWindows(ctx context.Context) (openings, reservations []models.TimeRange, err error) {
	now := time.Now()
	reqURL := c.buildURL(now, now.AddDate(0, 0, c.config.Source.LookaheadDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching resource: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading response: %w", err)
	}

	var resource resourceResponse
	if err := json.Unmarshal(content, &resource); err != nil {
		return nil, nil, fmt.Errorf("error unmarshaling resource: %w", err)
	}

	return convertWindows(&resource)
}

func (c *Client) buildURL(start, end time.Time) string {
	base := strings.TrimSuffix(c.config.Source.BaseURL, "/")
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))
	query.Set("format", "json")
	return fmt.Sprintf("%s/resource/%s/?%s", base, c.config.Source.ResourceID, query.Encode())
}

// convertWindows turns the raw resource payload into TimeRange lists.
func convertWindows(resource *resourceResponse) (openings, reservations []models.TimeRange, err error) {
	for _, oh := range resource.OpeningHours {
		// Null opens or closes means the facility is closed that date.
		if oh.Opens == nil || oh.Closes == nil {
			continue
		}
		window, err := parseRange(*oh.Opens, *oh.Closes)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing opening hours for %s: %w", oh.Date, err)
		}
		if !window.Valid() {
			continue
		}
		openings = append(openings, window)
	}

	for _, r := range resource.Reservations {
		window, err := parseRange(r.Begin, r.End)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing reservation: %w", err)
		}
		if !window.Valid() {
			continue
		}
		reservations = append(reservations, window)
	}

	return openings, reservations, nil
}

func parseRange(start, end string) (models.TimeRange, error) {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return models.TimeRange{}, fmt.Errorf("error parsing timestamp %s: %w", start, err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return models.TimeRange{}, fmt.Errorf("error parsing timestamp %s: %w", end, err)
	}
	return models.TimeRange{Start: startTime, End: endTime}, nil
}
