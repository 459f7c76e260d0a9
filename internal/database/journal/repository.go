// Package journal stores lending journal entries.
package journal

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/lending/internal/entities"
)

const defaultPageSize = 50

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves a journal entry to the database.
func (r *Repository) LogEvent(event *entities.LendingEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// GetEvents retrieves paginated journal entries, oldest first.
func (r *Repository) GetEvents(limit, offset int) ([]entities.LendingEvent, int64, error) {
	return r.page(r.db.Model(&entities.LendingEvent{}), limit, offset)
}

// GetEventsByType retrieves journal entries filtered by type.
func (r *Repository) GetEventsByType(eventType entities.LendingEventType, limit, offset int) ([]entities.LendingEvent, int64, error) {
	query := r.db.Model(&entities.LendingEvent{}).Where("event_type = ?", eventType)
	return r.page(query, limit, offset)
}

// GetEventsForPatron retrieves every journal entry about a patron.
func (r *Repository) GetEventsForPatron(patronID string) ([]entities.LendingEvent, error) {
	var events []entities.LendingEvent
	err := r.db.Where("patron_id = ?", patronID).Order("created_at ASC, id ASC").Find(&events).Error
	return events, err
}

// DeleteOldEvents removes journal entries older than the specified time.
// Returns the number of deleted entries.
func (r *Repository) DeleteOldEvents(olderThan time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", olderThan).Delete(&entities.LendingEvent{})
	return result.RowsAffected, result.Error
}

func (r *Repository) page(query *gorm.DB, limit, offset int) ([]entities.LendingEvent, int64, error) {
	var events []entities.LendingEvent
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
