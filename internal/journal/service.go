// Package journal turns library operations into persisted lending events.
package journal

import (
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/mrlokans/lending/internal/database/journal"
	"github.com/mrlokans/lending/internal/entities"
	"github.com/mrlokans/lending/internal/lending"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ lending.Recorder = (*Service)(nil)

// Service provides high-level journal functionality.
type Service struct {
	repo *journal.Repository
}

// NewService creates a new journal service.
func NewService(repo *journal.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a journal entry.
func (s *Service) Log(event *entities.LendingEvent) error {
	return s.repo.LogEvent(event)
}

// Record implements lending.Recorder. Storage failures are logged and do not
// affect the library operation that produced the event.
func (s *Service) Record(event lending.Event) {
	if err := s.Log(toEntry(event)); err != nil {
		log.Printf("Failed to journal %s event: %v", event.Kind, err)
	}
}

func toEntry(event lending.Event) *entities.LendingEvent {
	entry := &entities.LendingEvent{
		EventType: entities.LendingEventType(event.Kind),
		BookID:    event.BookID,
		PatronID:  event.PatronID,
		Status:    entities.LendingStatusSuccess,
		CreatedAt: event.OccurredAt,
	}

	switch event.Kind {
	case lending.EventBookAdded:
		entry.Action = "book_add"
		entry.Description = fmt.Sprintf("Added book '%s'", event.BookTitle)
	case lending.EventPatronRegistered:
		entry.Action = "patron_register"
		entry.Description = fmt.Sprintf("Registered patron %s", event.PatronName)
	case lending.EventBorrow:
		entry.Action = "book_borrow"
		entry.Description = fmt.Sprintf("%s borrowed '%s'", event.PatronName, event.BookTitle)
	case lending.EventReturn:
		entry.Action = "book_return"
		entry.Description = fmt.Sprintf("%s returned '%s'", event.PatronName, event.BookTitle)
	}

	if event.Loan != nil {
		entry.LoanID = event.Loan.ID
		metadata := map[string]any{
			"loan_date": event.Loan.LoanDate.Format(time.DateOnly),
			"due_date":  event.Loan.DueDate.Format(time.DateOnly),
		}
		if mdBytes, err := json.Marshal(metadata); err == nil {
			entry.Metadata = string(mdBytes)
		}
	}

	if event.Err != nil {
		entry.Status = entities.LendingStatusFailed
		entry.ErrorMsg = truncate(event.Err.Error(), 500)
	}

	return entry
}

// GetEvents retrieves paginated journal entries.
func (s *Service) GetEvents(limit, offset int) ([]entities.LendingEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// GetEventsByType retrieves journal entries filtered by type.
func (s *Service) GetEventsByType(eventType entities.LendingEventType, limit, offset int) ([]entities.LendingEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// GetPatronHistory retrieves every journal entry about a patron.
func (s *Service) GetPatronHistory(patronID string) ([]entities.LendingEvent, error) {
	return s.repo.GetEventsForPatron(patronID)
}

// DeleteOldEvents removes entries older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// LoanDates decodes the loan and due dates stored in an entry's metadata.
func LoanDates(entry entities.LendingEvent) (loanDate, dueDate string, ok bool) {
	if entry.Metadata == "" {
		return "", "", false
	}
	var md struct {
		LoanDate string `json:"loan_date"`
		DueDate  string `json:"due_date"`
	}
	if err := json.UnmarshalFromString(entry.Metadata, &md); err != nil {
		return "", "", false
	}
	return md.LoanDate, md.DueDate, true
}

// truncate shortens a string to at most maxLen bytes without splitting a
// UTF-8 sequence.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
