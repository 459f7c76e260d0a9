package entities

import "time"

type LendingEventType string

const (
	LendingEventBookAdded        LendingEventType = "book_added"
	LendingEventPatronRegistered LendingEventType = "patron_registered"
	LendingEventBorrow           LendingEventType = "borrow"
	LendingEventReturn           LendingEventType = "return"
)

type LendingStatus string

const (
	LendingStatusSuccess LendingStatus = "success"
	LendingStatusFailed  LendingStatus = "failed"
)

// LendingEvent is one entry of the lending journal. The journal is an audit
// trail only; library state is never rebuilt from it.
type LendingEvent struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	EventType   LendingEventType `gorm:"index;size:50" json:"event_type"`
	Action      string           `gorm:"size:100" json:"action"`      // e.g., "book_borrow", "book_return"
	Description string           `gorm:"size:500" json:"description"` // Human-readable summary
	BookID      string           `gorm:"index;size:36" json:"book_id,omitempty"`
	PatronID    string           `gorm:"index;size:36" json:"patron_id,omitempty"`
	LoanID      string           `gorm:"size:36" json:"loan_id,omitempty"`
	Metadata    string           `gorm:"type:text" json:"metadata,omitempty"` // JSON for extra data
	Status      LendingStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string           `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
}

func (LendingEvent) TableName() string {
	return "lending_events"
}
