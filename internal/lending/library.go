// Package lending implements the lending workflow of a small library:
// books with copy counts, patrons with their active loans, and the registry
// that owns both.
//
// Book, Loan and Patron are plain values with no locking; direct calls on
// them assume a single caller. Library serialises every mutation behind one
// mutex, so it is the entry point for concurrent callers such as the HTTP API.
//
// # Usage
//
//	lib := lending.NewLibrary(nil)
//	book, _ := lending.NewBook("Dune", "Frank Herbert", 1965, 2, "")
//	lib.AddBook(book)
//	patron := lending.NewPatron("Ada", "Lovelace", "ada@example.com")
//	lib.RegisterPatron(patron)
//	loan, err := lib.Lend(patron.ID, book.ID)
package lending

import (
	"fmt"
	"sync"
	"time"
)

// EventKind identifies a journaled library operation.
type EventKind string

const (
	EventBookAdded        EventKind = "book_added"
	EventPatronRegistered EventKind = "patron_registered"
	EventBorrow           EventKind = "borrow"
	EventReturn           EventKind = "return"
)

// Event describes the outcome of one library operation. Err is set when
// the operation was rejected; Loan is set for successful borrows and returns.
type Event struct {
	Kind       EventKind
	BookID     string
	BookTitle  string
	PatronID   string
	PatronName string
	Loan       *LoanSnapshot
	Err        error
	OccurredAt time.Time
}

// Recorder receives an Event for every operation performed through a Library.
// Record is called after the library lock is released, so a Recorder may read
// from the Library. Events of concurrent operations can arrive out of order;
// OccurredAt is taken under the lock.
type Recorder interface {
	Record(event Event)
}

type nopRecorder struct{}

func (nopRecorder) Record(Event) {}

// Library owns the canonical book and patron collections.
type Library struct {
	mu       sync.Mutex
	books    []*Book
	patrons  []*Patron
	recorder Recorder
	now      func() time.Time
}

// NewLibrary creates an empty library. A nil recorder discards events.
func NewLibrary(recorder Recorder) *Library {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Library{
		recorder: recorder,
		now:      time.Now,
	}
}

// SetClock replaces the source of "today" used for new loans.
func (l *Library) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// AddBook appends book to the catalog. Duplicates are kept as distinct entries.
func (l *Library) AddBook(book *Book) {
	l.mu.Lock()
	l.books = append(l.books, book)
	event := Event{
		Kind:       EventBookAdded,
		BookID:     book.ID,
		BookTitle:  book.Title,
		OccurredAt: l.now(),
	}
	l.mu.Unlock()

	l.recorder.Record(event)
}

// RegisterPatron appends patron to the patron list. No uniqueness check is made.
func (l *Library) RegisterPatron(patron *Patron) {
	l.mu.Lock()
	l.patrons = append(l.patrons, patron)
	event := Event{
		Kind:       EventPatronRegistered,
		PatronID:   patron.ID,
		PatronName: patron.FullName(),
		OccurredAt: l.now(),
	}
	l.mu.Unlock()

	l.recorder.Record(event)
}

// ListBooks returns a snapshot of every book in insertion order.
func (l *Library) ListBooks() []BookSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bookSnapshots()
}

// ListPatrons returns a snapshot of every patron in insertion order.
func (l *Library) ListPatrons() []PatronSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.patronSnapshots()
}

// Inventory returns books and patrons taken under a single lock, so copy counts
// and active loans are consistent with each other.
func (l *Library) Inventory() ([]BookSnapshot, []PatronSnapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bookSnapshots(), l.patronSnapshots()
}

func (l *Library) bookSnapshots() []BookSnapshot {
	books := make([]BookSnapshot, 0, len(l.books))
	for _, b := range l.books {
		books = append(books, b.Snapshot())
	}
	return books
}

func (l *Library) patronSnapshots() []PatronSnapshot {
	patrons := make([]PatronSnapshot, 0, len(l.patrons))
	for _, p := range l.patrons {
		patrons = append(patrons, p.Snapshot())
	}
	return patrons
}

// Today returns the calendar day new loans are dated on.
func (l *Library) Today() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return truncateToDay(l.now())
}

// Book returns a snapshot of the book with the given ID.
func (l *Library) Book(id string) (BookSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	book, err := l.findBook(id)
	if err != nil {
		return BookSnapshot{}, err
	}
	return book.Snapshot(), nil
}

// Patron returns a snapshot of the patron with the given ID.
func (l *Library) Patron(id string) (PatronSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	patron, err := l.findPatron(id)
	if err != nil {
		return PatronSnapshot{}, err
	}
	return patron.Snapshot(), nil
}

// Lend checks out one copy of the book for the patron.
func (l *Library) Lend(patronID, bookID string) (LoanSnapshot, error) {
	return l.settle(EventBorrow, patronID, bookID, func(patron *Patron, book *Book, now time.Time) (*Loan, error) {
		return patron.BorrowOn(book, now)
	})
}

// Return closes the patron's first active loan of the book.
func (l *Library) Return(patronID, bookID string) (LoanSnapshot, error) {
	return l.settle(EventReturn, patronID, bookID, func(patron *Patron, book *Book, _ time.Time) (*Loan, error) {
		return patron.ReturnBook(book)
	})
}

// settle runs op under the lock and records its outcome once the lock is
// released. Unknown IDs fail before an event is built and are not recorded.
func (l *Library) settle(kind EventKind, patronID, bookID string, op func(*Patron, *Book, time.Time) (*Loan, error)) (LoanSnapshot, error) {
	l.mu.Lock()
	patron, book, err := l.resolve(patronID, bookID)
	if err != nil {
		l.mu.Unlock()
		return LoanSnapshot{}, err
	}

	event := Event{
		Kind:       kind,
		BookID:     book.ID,
		BookTitle:  book.Title,
		PatronID:   patron.ID,
		PatronName: patron.FullName(),
		OccurredAt: l.now(),
	}

	var snapshot LoanSnapshot
	loan, err := op(patron, book, event.OccurredAt)
	if err != nil {
		event.Err = err
	} else {
		snapshot = loan.Snapshot()
		event.Loan = &snapshot
	}
	l.mu.Unlock()

	l.recorder.Record(event)
	return snapshot, err
}

func (l *Library) resolve(patronID, bookID string) (*Patron, *Book, error) {
	patron, err := l.findPatron(patronID)
	if err != nil {
		return nil, nil, err
	}
	book, err := l.findBook(bookID)
	if err != nil {
		return nil, nil, err
	}
	return patron, book, nil
}

func (l *Library) findBook(id string) (*Book, error) {
	for _, b := range l.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("book %s: %w", id, ErrBookNotFound)
}

func (l *Library) findPatron(id string) (*Patron, error) {
	for _, p := range l.patrons {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("patron %s: %w", id, ErrPatronNotFound)
}
