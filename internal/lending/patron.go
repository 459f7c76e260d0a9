package lending

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Patron is a registered library user and the owner of their active loans.
type Patron struct {
	ID        string
	FirstName string
	LastName  string
	Email     string

	loans []*Loan
}

// NewPatron creates a patron with a generated ID and no loans.
func NewPatron(firstName, lastName, email string) *Patron {
	return &Patron{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
}

// FullName returns "First Last".
func (p *Patron) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Borrow checks out one copy of book dated today.
func (p *Patron) Borrow(book *Book) (*Loan, error) {
	return p.BorrowOn(book, time.Now())
}

// BorrowOn checks out one copy of book dated on the given day. Nothing is
// mutated when the book has no available copies.
func (p *Patron) BorrowOn(book *Book, loanDate time.Time) (*Loan, error) {
	if !book.IsAvailable() {
		return nil, fmt.Errorf("'%s': %w", book.Title, ErrBookUnavailable)
	}
	if err := book.DecreaseCopies(1); err != nil {
		return nil, err
	}

	loan := NewLoan(book, p, loanDate)
	p.loans = append(p.loans, loan)
	return loan, nil
}

// ReturnBook closes the first active loan referencing book, in borrow order,
// and puts the copy back on the shelf.
func (p *Patron) ReturnBook(book *Book) (*Loan, error) {
	idx := -1
	for i, loan := range p.loans {
		if loan.book == book {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%s has not borrowed '%s': %w", p.FirstName, book.Title, ErrNoActiveLoan)
	}

	if err := book.IncreaseCopies(1); err != nil {
		return nil, err
	}
	loan := p.loans[idx]
	p.loans = append(p.loans[:idx:idx], p.loans[idx+1:]...)
	return loan, nil
}

// Loans returns the active loans in the order they were made.
func (p *Patron) Loans() []*Loan {
	loans := make([]*Loan, len(p.loans))
	copy(loans, p.loans)
	return loans
}

// Snapshot returns a copy of the patron and their active loans.
func (p *Patron) Snapshot() PatronSnapshot {
	loans := make([]LoanSnapshot, 0, len(p.loans))
	for _, l := range p.loans {
		loans = append(loans, l.Snapshot())
	}
	return PatronSnapshot{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Loans:     loans,
	}
}

// PatronSnapshot is a read-only view of a Patron.
type PatronSnapshot struct {
	ID        string         `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Email     string         `json:"email"`
	Loans     []LoanSnapshot `json:"loans"`
}
