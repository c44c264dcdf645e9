// pkg/respa/client_test.go

package respa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courtwatch/pkg/models"

	"github.com/stretchr/testify/require"
)

const sampleResource = `{
	"opening_hours": [
		{
			"date": "2023-12-01",
			"opens": "2023-12-01T10:00:00+02:00",
			"closes": "2023-12-01T14:00:00+02:00"
		},
		{
			"date": "2023-12-02",
			"opens": null,
			"closes": null
		},
		{
			"date": "2023-12-03",
			"opens": "2023-12-03T16:00:00+02:00",
			"closes": "2023-12-03T19:00:00+02:00"
		}
	],
	"reservations": [
		{
			"begin": "2023-12-01T10:00:00+02:00",
			"end": "2023-12-01T11:00:00+02:00"
		}
	]
}`

func testConfig(baseURL string) *models.Config {
	config := &models.Config{}
	config.Source.BaseURL = baseURL
	config.Source.ResourceID = "axwzr3i57yba"
	config.Source.TimeoutSeconds = 5
	config.Source.LookaheadDays = 14
	return config
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestFetchWindows(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResource))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	openings, reservations, err := client.FetchWindows(context.Background())
	require.NoError(t, err)

	require.Equal(t, "/resource/axwzr3i57yba/", gotPath)
	require.Contains(t, gotQuery, "format=json")
	require.Contains(t, gotQuery, "start=")
	require.Contains(t, gotQuery, "end=")

	// The closed date (null opens/closes) is excluded.
	require.Len(t, openings, 2)
	require.True(t, openings[0].Start.Equal(mustParse(t, "2023-12-01T10:00:00+02:00")))
	require.True(t, openings[0].End.Equal(mustParse(t, "2023-12-01T14:00:00+02:00")))
	require.True(t, openings[1].Start.Equal(mustParse(t, "2023-12-03T16:00:00+02:00")))

	require.Len(t, reservations, 1)
	require.True(t, reservations[0].Start.Equal(mustParse(t, "2023-12-01T10:00:00+02:00")))
	require.True(t, reservations[0].End.Equal(mustParse(t, "2023-12-01T11:00:00+02:00")))
}

func TestFetchWindowsRequestSpansLookahead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := mustParse(t, r.URL.Query().Get("start"))
		end := mustParse(t, r.URL.Query().Get("end"))
		// Calendar days, so a DST boundary may shave or add an hour.
		require.InDelta(t, 14*24*time.Hour, end.Sub(start), float64(2*time.Hour))
		w.Write([]byte(`{"opening_hours": [], "reservations": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	openings, reservations, err := client.FetchWindows(context.Background())
	require.NoError(t, err)
	require.Empty(t, openings)
	require.Empty(t, reservations)
}

func TestFetchWindowsRejectsMalformedTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"opening_hours": [
				{"date": "2023-12-01", "opens": "not-a-time", "closes": "2023-12-01T14:00:00+02:00"}
			],
			"reservations": []
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, _, err := client.FetchWindows(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing")
}

func TestFetchWindowsDropsInvertedWindows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"opening_hours": [
				{"date": "2023-12-01", "opens": "2023-12-01T14:00:00+02:00", "closes": "2023-12-01T10:00:00+02:00"}
			],
			"reservations": [
				{"begin": "2023-12-01T11:00:00+02:00", "end": "2023-12-01T11:00:00+02:00"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	openings, reservations, err := client.FetchWindows(context.Background())
	require.NoError(t, err)
	require.Empty(t, openings)
	require.Empty(t, reservations)
}

func TestFetchWindowsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "resource not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, _, err := client.FetchWindows(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}
