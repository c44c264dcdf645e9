// pkg/pipeline/processor.go

package pipeline

import (
	"context"
	"fmt"
	"log"

	"courtwatch/pkg/availability"
	"courtwatch/pkg/database"
	"courtwatch/pkg/models"
	"courtwatch/pkg/notify"
	"courtwatch/pkg/respa"
)

// Processor coordinates one fetch-compute-diff-persist-notify cycle
type Processor struct {
	config   *models.Config
	db       *database.Database
	client   *respa.Client
	notifier *notify.Telegram
	logger   *log.Logger
}

// NewProcessor creates a new cycle processor
func NewProcessor(
	config *models.Config,
	db *database.Database,
	logger *log.Logger,
) *Processor {
	return &Processor{
		config:   config,
		db:       db,
		client:   respa.NewClient(config),
		notifier: notify.NewTelegram(config),
		logger:   logger,
	}
}

// RunCycle executes a single poll cycle. Fetch, snapshot load and snapshot
// replacement failures abort the cycle and leave the prior snapshot in
// place; the next tick retries from scratch. A notification failure is only
// logged, since the new state is already persisted by then and resending on
// the next tick would report nothing new anyway.
func (p *Processor) RunCycle(ctx context.Context) error {
	openings, reservations, err := p.client.FetchWindows(ctx)
	if err != nil {
		p.logError("fetch", models.ErrorTypeFetch, err)
		return fmt.Errorf("error fetching availability data: %w", err)
	}

	current := availability.Compute(openings, reservations)

	previous, err := p.db.LoadSnapshot()
	if err != nil {
		p.logError("snapshot_load", models.ErrorTypeDatabase, err)
		return fmt.Errorf("error loading previous snapshot: %w", err)
	}

	fresh := availability.Diff(current, previous)

	if err := p.db.ReplaceSnapshot(current); err != nil {
		p.logError("snapshot_replace", models.ErrorTypeDatabase, err)
		return fmt.Errorf("error persisting snapshot: %w", err)
	}

	if len(fresh) == 0 {
		p.logger.Printf("Cycle complete: %d available ranges, nothing new", len(current))
		return nil
	}

	for _, slot := range fresh {
		p.logger.Printf("New available time: %s", slot)
	}

	if err := p.notifier.Notify(ctx, fresh); err != nil {
		p.logError("notify", models.ErrorTypeNotify, err)
		p.logger.Printf("Notification failed: %v", err)
	}

	return nil
}

// logError records a cycle error to the database
func (p *Processor) logError(source, errorType string, err error) {
	pollError := &models.PollError{
		Source:    source,
		ErrorType: errorType,
		Message:   err.Error(),
	}

	if logErr := p.db.LogError(pollError); logErr != nil {
		p.logger.Printf("Error logging error: %v", logErr)
	}
}
