// pkg/models/models.go

package models

import "time"

// Config holds all configuration settings
type Config struct {
	Source struct {
		BaseURL        string `yaml:"base_url"`
		ResourceID     string `yaml:"resource_id"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		LookaheadDays  int    `yaml:"lookahead_days"`
	} `yaml:"source"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Telegram struct {
		APIURL         string `yaml:"api_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		// BotToken and ChatID are resolved from the environment at
		// startup, never from the config file.
		BotToken string `yaml:"-"`
		ChatID   string `yaml:"-"`
	} `yaml:"telegram"`

	Logging struct {
		Path string `yaml:"path"`
	} `yaml:"logging"`

	Processing struct {
		PollIntervalSeconds int           `yaml:"poll_interval_seconds"`
		ActiveHours         []ClockWindow `yaml:"active_hours"`
	} `yaml:"processing"`
}

// ClockWindow is a wall-clock window in HH:MM form. Windows may cross
// midnight (start later than end).
type ClockWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// PollError represents a row in the poll_errors table
type PollError struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	ErrorType string    `json:"error_type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorType represents types of poll cycle errors
const (
	ErrorTypeFetch    = "fetch_error"
	ErrorTypeParse    = "parse_error"
	ErrorTypeDatabase = "database_error"
	ErrorTypeNotify   = "notify_error"
)
