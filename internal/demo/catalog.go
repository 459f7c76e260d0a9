// Package demo seeds the demonstration catalog, replays the demonstration
// lending scenario and provides the read-only mode used for public demos.
package demo

import (
	"fmt"

	"github.com/mrlokans/lending/internal/lending"
)

// Catalog holds the seeded books and patrons so the scenario can refer to them.
type Catalog struct {
	Witcher    *lending.Book
	PanTadeusz *lending.Book
	CleanCode  *lending.Book

	Jan  *lending.Patron
	Anna *lending.Patron
}

type bookSeed struct {
	title       string
	author      string
	year        int
	copies      int
	description string
}

var bookSeeds = []bookSeed{
	{"Wiedźmin: Ostatnie Życzenie", "Andrzej Sapkowski", 1993, 3, "Short stories about Geralt of Rivia."},
	{"Pan Tadeusz", "Adam Mickiewicz", 1834, 1, "National epic poem."},
	{"Czysty Kod", "Robert C. Martin", 2008, 0, "A handbook of good programming."},
}

// Seed adds the demonstration books and patrons to lib.
func Seed(lib *lending.Library) (*Catalog, error) {
	books := make([]*lending.Book, 0, len(bookSeeds))
	for _, s := range bookSeeds {
		book, err := lending.NewBook(s.title, s.author, s.year, s.copies, s.description)
		if err != nil {
			return nil, fmt.Errorf("seed book '%s': %w", s.title, err)
		}
		lib.AddBook(book)
		books = append(books, book)
	}

	jan := lending.NewPatron("Jan", "Kowalski", "jan.kowalski@example.com")
	anna := lending.NewPatron("Anna", "Nowak", "anna.nowak@example.com")
	lib.RegisterPatron(jan)
	lib.RegisterPatron(anna)

	return &Catalog{
		Witcher:    books[0],
		PanTadeusz: books[1],
		CleanCode:  books[2],
		Jan:        jan,
		Anna:       anna,
	}, nil
}

// Books returns the seeded books in catalog order.
func (c *Catalog) Books() []*lending.Book {
	return []*lending.Book{c.Witcher, c.PanTadeusz, c.CleanCode}
}

// Patrons returns the seeded patrons in registration order.
func (c *Catalog) Patrons() []*lending.Patron {
	return []*lending.Patron{c.Jan, c.Anna}
}
