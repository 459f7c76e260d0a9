// Package report renders library state and lending outcomes as
// human-readable lines. It holds no state and never mutates the library.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mrlokans/lending/internal/lending"
)

const (
	booksHeader   = "--- Books in the library ---"
	patronsHeader = "--- Registered patrons ---"
	loansHeader   = "--- Active loans ---"
)

// FormatBook renders "'Title' - Author (Year) [Available: N]".
func FormatBook(b lending.BookSnapshot) string {
	return fmt.Sprintf("'%s' - %s (%d) [Available: %d]", b.Title, b.Author, b.PublicationYear, b.AvailableCopies)
}

// FormatPatron renders "First Last (email)".
func FormatPatron(p lending.PatronSnapshot) string {
	return fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, p.Email)
}

// FormatLoan renders a loan line with its due date. When now is non-zero the
// due date is followed by a relative phrase such as "2 weeks from now".
func FormatLoan(l lending.LoanSnapshot, patronName string, now time.Time) string {
	line := fmt.Sprintf("Loan: %s by %s (due %s)", l.BookTitle, patronName, l.DueDate.Format(time.DateOnly))
	if now.IsZero() {
		return line
	}
	return line + ", " + humanize.RelTime(l.DueDate, now, "ago", "from now")
}

// BookAdded confirms a book was added to the catalog.
func BookAdded(b lending.BookSnapshot) string {
	return fmt.Sprintf("Library: added book '%s'.", b.Title)
}

// PatronRegistered confirms a patron was registered.
func PatronRegistered(p lending.PatronSnapshot) string {
	return fmt.Sprintf("Library: registered patron %s %s.", p.FirstName, p.LastName)
}

// WriteBooks writes the book listing framed by a header and a rule.
func WriteBooks(w io.Writer, books []lending.BookSnapshot) error {
	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, FormatBook(b))
	}
	return writeSection(w, booksHeader, lines)
}

// WritePatrons writes the patron listing framed by a header and a rule.
func WritePatrons(w io.Writer, patrons []lending.PatronSnapshot) error {
	lines := make([]string, 0, len(patrons))
	for _, p := range patrons {
		lines = append(lines, FormatPatron(p))
	}
	return writeSection(w, patronsHeader, lines)
}

// WriteLoans writes every active loan, grouped by patron in registration order,
// with due dates phrased relative to now.
func WriteLoans(w io.Writer, patrons []lending.PatronSnapshot, now time.Time) error {
	var lines []string
	for _, p := range patrons {
		name := p.FirstName + " " + p.LastName
		for _, l := range p.Loans {
			lines = append(lines, FormatLoan(l, name, now))
		}
	}
	return writeSection(w, loansHeader, lines)
}

func writeSection(w io.Writer, header string, lines []string) error {
	var sb strings.Builder
	sb.WriteString("\n" + header + "\n")
	for _, line := range lines {
		sb.WriteString(line + "\n")
	}
	sb.WriteString(strings.Repeat("-", len(header)) + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Action is a lending operation whose outcome is reported.
type Action string

const (
	ActionBorrow Action = "borrow"
	ActionReturn Action = "return"
)

// Outcome renders the result of a borrow or return attempt.
func Outcome(action Action, patron lending.PatronSnapshot, book lending.BookSnapshot, err error) string {
	if err == nil {
		verb := "borrowed"
		if action == ActionReturn {
			verb = "returned"
		}
		return fmt.Sprintf("Success: %s %s '%s'.", patron.FirstName, verb, book.Title)
	}

	switch {
	case errors.Is(err, lending.ErrBookUnavailable):
		return fmt.Sprintf("Failure: '%s' is unavailable.", book.Title)
	case errors.Is(err, lending.ErrNoActiveLoan):
		return fmt.Sprintf("Error: %s has no active loan of '%s'.", patron.FirstName, book.Title)
	default:
		return fmt.Sprintf("Error: %s could not %s '%s': %v", patron.FirstName, action, book.Title, err)
	}
}
