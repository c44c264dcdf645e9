// pkg/database/database.go

package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"courtwatch/pkg/models"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Database represents our SQLite connection and operations
type Database struct {
	*sql.DB
}

// InitDB initializes the database and creates tables if they don't exist
func InitDB(dbPath string) (*Database, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Database{db}, nil
}

func createTables(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS snapshot (
			position INTEGER PRIMARY KEY,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS poll_errors (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			error_type TEXT NOT NULL,
			message TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}

	return nil
}

// LoadSnapshot reads the availability list persisted by the previous cycle,
// in stored order. Returns an empty list when no snapshot exists yet.
func (db *Database) LoadSnapshot() ([]models.TimeRange, error) {
	query := `
		SELECT start_time, end_time
		FROM snapshot
		ORDER BY position
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.TimeRange
	for rows.Next() {
		var startStr, endStr string
		if err := rows.Scan(&startStr, &endStr); err != nil {
			return nil, err
		}
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, fmt.Errorf("error parsing stored start time %s: %w", startStr, err)
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return nil, fmt.Errorf("error parsing stored end time %s: %w", endStr, err)
		}
		slots = append(slots, models.TimeRange{Start: start, End: end})
	}
	return slots, rows.Err()
}

// ReplaceSnapshot overwrites the persisted availability list with the given
// one. The delete and inserts run in a single transaction so a failure
// leaves the prior snapshot untouched.
func (db *Database) ReplaceSnapshot(slots []models.TimeRange) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM snapshot`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO snapshot (position, start_time, end_time) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, slot := range slots {
		_, err := stmt.Exec(i, slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LogError records a poll cycle error
func (db *Database) LogError(pollError *models.PollError) error {
	if pollError.ID == "" {
		pollError.ID = uuid.NewString()
	}
	query := `
		INSERT INTO poll_errors (id, source, error_type, message)
		VALUES (?, ?, ?, ?)
	`
	_, err := db.Exec(query,
		pollError.ID,
		pollError.Source,
		pollError.ErrorType,
		pollError.Message,
	)
	return err
}
