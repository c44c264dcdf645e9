// cmd/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"courtwatch/pkg/database"
	"courtwatch/pkg/models"
	"courtwatch/pkg/pipeline"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	defaultLookaheadDays       = 14
	defaultPollIntervalSeconds = 600
	defaultTimeoutSeconds      = 30
	defaultTelegramAPIURL      = "https://api.telegram.org"
)

// findConfigFile looks for config.yml in various locations
func findConfigFile() (string, error) {
	// Possible config locations
	locations := []string{
		"config/config.yml",                       // From current directory
		"../config/config.yml",                    // One level up
		filepath.Join("cmd", "config/config.yml"), // From cmd directory
	}

	// Get executable directory
	ex, err := os.Executable()
	if err == nil {
		execDir := filepath.Dir(ex)
		locations = append(locations,
			filepath.Join(execDir, "config/config.yml"),
			filepath.Join(execDir, "../config/config.yml"),
		)
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			absPath, err := filepath.Abs(loc)
			if err != nil {
				continue
			}
			return absPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in any of the expected locations")
}

// loadConfig reads and parses the config file, applies defaults, and
// resolves Telegram credentials from the environment.
func loadConfig() (*models.Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	log.Printf("Loading config from: %s\n", configPath)

	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config models.Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Source.BaseURL == "" {
		return nil, fmt.Errorf("source.base_url is required")
	}
	if config.Source.ResourceID == "" {
		return nil, fmt.Errorf("source.resource_id is required")
	}
	if config.Source.LookaheadDays <= 0 {
		config.Source.LookaheadDays = defaultLookaheadDays
	}
	if config.Source.TimeoutSeconds <= 0 {
		config.Source.TimeoutSeconds = defaultTimeoutSeconds
	}
	if config.Telegram.APIURL == "" {
		config.Telegram.APIURL = defaultTelegramAPIURL
	}
	if config.Telegram.TimeoutSeconds <= 0 {
		config.Telegram.TimeoutSeconds = defaultTimeoutSeconds
	}
	if config.Processing.PollIntervalSeconds <= 0 {
		config.Processing.PollIntervalSeconds = defaultPollIntervalSeconds
	}

	// Credentials come from the environment (.env is honored for local
	// runs). Missing credentials are fatal at startup, not per cycle.
	godotenv.Load()
	config.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	config.Telegram.ChatID = os.Getenv("TELEGRAM_CHAT_ID")
	if config.Telegram.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	if config.Telegram.ChatID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID environment variable is not set")
	}

	config.Database.Path, err = filepath.Abs(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid database path: %w", err)
	}

	config.Logging.Path, err = filepath.Abs(config.Logging.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid logging path: %w", err)
	}

	return &config, nil
}

// setupLogger configures the application logger
func setupLogger(logPath string) (*log.Logger, error) {
	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(
		logPath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return log.New(logFile, "", log.LstdFlags|log.Lshortfile), nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Setup logger
	logger, err := setupLogger(config.Logging.Path)
	if err != nil {
		log.Fatalf("Logger setup error: %v", err)
	}

	// Initialize database
	db, err := database.InitDB(config.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	processor := pipeline.NewProcessor(config, db, logger)
	scheduler := pipeline.NewScheduler(
		processor,
		logger,
		time.Duration(config.Processing.PollIntervalSeconds)*time.Second,
	)

	if err := scheduler.Start(ctx); err != nil {
		logger.Fatal("Failed to start scheduler:", err)
	}
	logger.Printf("Polling resource %s every %ds", config.Source.ResourceID, config.Processing.PollIntervalSeconds)

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Printf("Received signal: %v", sig)
	logger.Println("Initiating graceful shutdown...")

	cancel()
	scheduler.Stop()

	logger.Println("Shutdown completed")
}
