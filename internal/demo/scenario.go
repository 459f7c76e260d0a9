package demo

import (
	"fmt"
	"io"

	"github.com/mrlokans/lending/internal/lending"
	"github.com/mrlokans/lending/internal/report"
)

// Step is one borrow or return attempt of the scenario.
type Step struct {
	Action report.Action
	Patron *lending.Patron
	Book   *lending.Book
}

// StepResult pairs a step with the error it produced, if any.
type StepResult struct {
	Step
	Err error
}

// Steps returns the demonstration sequence: two successful borrows of the
// witcher book, a failed borrow of the out-of-stock title, Anna taking the
// only copy of Pan Tadeusz and failing to take it twice, then one valid and
// one invalid return.
func Steps(c *Catalog) (borrows, returns []Step) {
	borrows = []Step{
		{report.ActionBorrow, c.Jan, c.Witcher},
		{report.ActionBorrow, c.Jan, c.CleanCode},
		{report.ActionBorrow, c.Anna, c.Witcher},
		{report.ActionBorrow, c.Anna, c.PanTadeusz},
		{report.ActionBorrow, c.Anna, c.PanTadeusz},
	}
	returns = []Step{
		{report.ActionReturn, c.Anna, c.PanTadeusz},
		{report.ActionReturn, c.Jan, c.CleanCode},
	}
	return borrows, returns
}

// Run seeds lib, replays the scenario and writes the report to w.
func Run(w io.Writer, lib *lending.Library) ([]StepResult, error) {
	catalog, err := Seed(lib)
	if err != nil {
		return nil, err
	}
	for _, b := range catalog.Books() {
		fmt.Fprintln(w, report.BookAdded(b.Snapshot()))
	}
	for _, p := range catalog.Patrons() {
		fmt.Fprintln(w, report.PatronRegistered(p.Snapshot()))
	}

	if err := WriteLibrary(w, lib, true); err != nil {
		return nil, err
	}

	borrows, returns := Steps(catalog)
	var results []StepResult

	fmt.Fprintln(w, "\n--- Borrowing ---")
	for _, step := range borrows {
		results = append(results, apply(w, lib, step))
	}
	if err := WriteLibrary(w, lib, false); err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "\n--- Returns ---")
	for _, step := range returns {
		results = append(results, apply(w, lib, step))
	}
	if err := WriteLibrary(w, lib, false); err != nil {
		return nil, err
	}

	return results, nil
}

func apply(w io.Writer, lib *lending.Library, step Step) StepResult {
	var err error
	switch step.Action {
	case report.ActionBorrow:
		_, err = lib.Lend(step.Patron.ID, step.Book.ID)
	case report.ActionReturn:
		_, err = lib.Return(step.Patron.ID, step.Book.ID)
	}

	patron, lookupErr := lib.Patron(step.Patron.ID)
	if lookupErr != nil {
		return StepResult{Step: step, Err: lookupErr}
	}
	book, lookupErr := lib.Book(step.Book.ID)
	if lookupErr != nil {
		return StepResult{Step: step, Err: lookupErr}
	}

	fmt.Fprintln(w, report.Outcome(step.Action, patron, book, err))
	return StepResult{Step: step, Err: err}
}

// WriteLibrary writes the book listing, the patron listing when withPatrons is
// set, and the active loans when there are any.
func WriteLibrary(w io.Writer, lib *lending.Library, withPatrons bool) error {
	books, patrons := lib.Inventory()
	if withPatrons {
		if err := report.WritePatrons(w, patrons); err != nil {
			return err
		}
	}
	if err := report.WriteBooks(w, books); err != nil {
		return err
	}

	for _, p := range patrons {
		if len(p.Loans) > 0 {
			return report.WriteLoans(w, patrons, lib.Today())
		}
	}
	return nil
}
