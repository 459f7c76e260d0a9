package lending

import "errors"

var (
	// ErrInsufficientCopies is returned when a decrement exceeds the available stock.
	ErrInsufficientCopies = errors.New("insufficient copies")

	// ErrBookUnavailable is returned when borrowing a book with no available copies.
	ErrBookUnavailable = errors.New("book is unavailable")

	// ErrNoActiveLoan is returned when a patron returns a book they have not borrowed.
	ErrNoActiveLoan = errors.New("no active loan for book")

	ErrInvalidCopies  = errors.New("copy count must be positive")
	ErrBookNotFound   = errors.New("book not found")
	ErrPatronNotFound = errors.New("patron not found")
)
