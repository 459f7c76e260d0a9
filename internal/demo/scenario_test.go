package demo

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lending/internal/lending"
)

func TestSeed(t *testing.T) {
	lib := lending.NewLibrary(nil)

	catalog, err := Seed(lib)

	require.NoError(t, err)
	books := lib.ListBooks()
	require.Len(t, books, 3)
	assert.Equal(t, []int{3, 1, 0}, []int{books[0].AvailableCopies, books[1].AvailableCopies, books[2].AvailableCopies})
	assert.Len(t, lib.ListPatrons(), 2)
	assert.Equal(t, "Jan", catalog.Jan.FirstName)
	assert.Equal(t, "Czysty Kod", catalog.CleanCode.Title)
}

func TestRun(t *testing.T) {
	lib := lending.NewLibrary(nil)
	lib.SetClock(func() time.Time {
		return time.Date(2024, time.June, 3, 15, 0, 0, 0, time.UTC)
	})
	var out bytes.Buffer

	results, err := Run(&out, lib)

	require.NoError(t, err)
	require.Len(t, results, 7)

	expectedErrs := []error{
		nil,                        // Jan borrows witcher
		lending.ErrBookUnavailable, // Jan borrows clean code (0 copies)
		nil,                        // Anna borrows witcher
		nil,                        // Anna borrows Pan Tadeusz
		lending.ErrBookUnavailable, // Anna borrows Pan Tadeusz again
		nil,                        // Anna returns Pan Tadeusz
		lending.ErrNoActiveLoan,    // Jan returns clean code
	}
	for i, want := range expectedErrs {
		if want == nil {
			assert.NoError(t, results[i].Err, "step %d", i)
		} else {
			assert.ErrorIs(t, results[i].Err, want, "step %d", i)
		}
	}

	books := lib.ListBooks()
	assert.Equal(t, 1, books[0].AvailableCopies)
	assert.Equal(t, 1, books[1].AvailableCopies)
	assert.Equal(t, 0, books[2].AvailableCopies)

	report := out.String()
	assert.Contains(t, report, "Success: Jan borrowed 'Wiedźmin: Ostatnie Życzenie'.")
	assert.Contains(t, report, "Failure: 'Czysty Kod' is unavailable.")
	assert.Contains(t, report, "Success: Anna returned 'Pan Tadeusz'.")
	assert.Contains(t, report, "Error: Jan has no active loan of 'Czysty Kod'.")
	assert.Contains(t, report, "'Wiedźmin: Ostatnie Życzenie' - Andrzej Sapkowski (1993) [Available: 1]")
	assert.Contains(t, report, "Jan Kowalski (jan.kowalski@example.com)")

	assert.Contains(t, report, "Library: added book 'Czysty Kod'.")
	assert.Contains(t, report, "Library: registered patron Anna Nowak.")
	assert.Less(t, strings.Index(report, "Library: added book"), strings.Index(report, "--- Registered patrons ---"))

	assert.Contains(t, report, "--- Active loans ---")
	assert.Contains(t, report, "Loan: Pan Tadeusz by Anna Nowak (due 2024-06-17), 2 weeks from now")
	assert.Contains(t, report, "Loan: Wiedźmin: Ostatnie Życzenie by Jan Kowalski (due 2024-06-17), 2 weeks from now")
}

func TestWriteLibrary_SkipsLoansWhenNoneActive(t *testing.T) {
	lib := lending.NewLibrary(nil)
	_, err := Seed(lib)
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, WriteLibrary(&out, lib, true))

	assert.Contains(t, out.String(), "--- Books in the library ---")
	assert.NotContains(t, out.String(), "--- Active loans ---")
}
