package http

import (
	"github.com/mrlokans/lending/internal/entities"
	"github.com/mrlokans/lending/internal/lending"
)

// This file consolidates the interfaces used by HTTP controllers.
// *lending.Library satisfies Catalog and *journal.Service satisfies JournalReader.

// Catalog provides the library operations exposed over HTTP.
type Catalog interface {
	AddBook(book *lending.Book)
	RegisterPatron(patron *lending.Patron)
	ListBooks() []lending.BookSnapshot
	ListPatrons() []lending.PatronSnapshot
	Inventory() ([]lending.BookSnapshot, []lending.PatronSnapshot)
	Book(id string) (lending.BookSnapshot, error)
	Patron(id string) (lending.PatronSnapshot, error)
	Lend(patronID, bookID string) (lending.LoanSnapshot, error)
	Return(patronID, bookID string) (lending.LoanSnapshot, error)
}

// JournalReader provides read access to the lending journal.
type JournalReader interface {
	GetEvents(limit, offset int) ([]entities.LendingEvent, int64, error)
	GetEventsByType(eventType entities.LendingEventType, limit, offset int) ([]entities.LendingEvent, int64, error)
	GetPatronHistory(patronID string) ([]entities.LendingEvent, error)
}

var _ Catalog = (*lending.Library)(nil)
