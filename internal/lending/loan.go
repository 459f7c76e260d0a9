package lending

import (
	"time"

	"github.com/google/uuid"
)

// LoanPeriodDays is the fixed number of days between loan date and due date.
const LoanPeriodDays = 14

// Loan records one checked-out copy. It is owned by the patron that created it
// and never changes after construction.
type Loan struct {
	id       string
	book     *Book
	patron   *Patron
	loanDate time.Time
	dueDate  time.Time
}

// NewLoan creates a loan dated on the calendar day of loanDate.
func NewLoan(book *Book, patron *Patron, loanDate time.Time) *Loan {
	day := truncateToDay(loanDate)
	return &Loan{
		id:       uuid.NewString(),
		book:     book,
		patron:   patron,
		loanDate: day,
		dueDate:  ComputeDueDate(day),
	}
}

// ComputeDueDate returns the calendar day the loan period ends.
func ComputeDueDate(loanDate time.Time) time.Time {
	return truncateToDay(loanDate).AddDate(0, 0, LoanPeriodDays)
}

func (l *Loan) ID() string { return l.id }

func (l *Loan) Book() *Book { return l.book }

func (l *Loan) Patron() *Patron { return l.patron }

func (l *Loan) LoanDate() time.Time { return l.loanDate }

func (l *Loan) DueDate() time.Time { return l.dueDate }

// Snapshot returns a copy of the loan suitable for serialisation.
func (l *Loan) Snapshot() LoanSnapshot {
	return LoanSnapshot{
		ID:        l.id,
		BookID:    l.book.ID,
		BookTitle: l.book.Title,
		PatronID:  l.patron.ID,
		LoanDate:  l.loanDate,
		DueDate:   l.dueDate,
	}
}

// LoanSnapshot is a read-only view of a Loan.
type LoanSnapshot struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	BookTitle string    `json:"book_title"`
	PatronID  string    `json:"patron_id"`
	LoanDate  time.Time `json:"loan_date"`
	DueDate   time.Time `json:"due_date"`
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
