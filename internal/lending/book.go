package lending

import (
	"fmt"

	"github.com/google/uuid"
)

// Book is a catalog title together with the number of copies on the shelf.
// A Book is shared by pointer between the Library and every Loan referencing it.
type Book struct {
	ID              string
	Title           string
	Author          string
	PublicationYear int
	AvailableCopies int
	Description     string
}

// NewBook creates a book with a generated ID.
func NewBook(title, author string, publicationYear, availableCopies int, description string) (*Book, error) {
	if availableCopies < 0 {
		return nil, fmt.Errorf("book '%s': %w", title, ErrInvalidCopies)
	}
	return &Book{
		ID:              uuid.NewString(),
		Title:           title,
		Author:          author,
		PublicationYear: publicationYear,
		AvailableCopies: availableCopies,
		Description:     description,
	}, nil
}

// DecreaseCopies takes count copies off the shelf. The book is left untouched
// when fewer than count copies are available.
func (b *Book) DecreaseCopies(count int) error {
	if count <= 0 {
		return ErrInvalidCopies
	}
	if b.AvailableCopies < count {
		return fmt.Errorf("cannot take %d of '%s' (%d available): %w",
			count, b.Title, b.AvailableCopies, ErrInsufficientCopies)
	}
	b.AvailableCopies -= count
	return nil
}

// IncreaseCopies puts count copies back on the shelf.
func (b *Book) IncreaseCopies(count int) error {
	if count <= 0 {
		return ErrInvalidCopies
	}
	b.AvailableCopies += count
	return nil
}

// IsAvailable reports whether at least one copy can be lent.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// Snapshot returns a copy of the book's current state.
func (b *Book) Snapshot() BookSnapshot {
	return BookSnapshot{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		AvailableCopies: b.AvailableCopies,
		Description:     b.Description,
	}
}

// BookSnapshot is a read-only view of a Book.
type BookSnapshot struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
	AvailableCopies int    `json:"available_copies"`
	Description     string `json:"description,omitempty"`
}
