package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lending/internal/lending"
)

type BooksController struct {
	catalog Catalog
}

func NewBooksController(catalog Catalog) *BooksController {
	return &BooksController{
		catalog: catalog,
	}
}

// CreateBookRequest is the body of POST /api/books.
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author" binding:"required"`
	PublicationYear int    `json:"publication_year"`
	AvailableCopies *int   `json:"available_copies" binding:"required"`
	Description     string `json:"description"`
}

// GetAllBooks returns every book in catalog order
// GET /api/books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books := controller.catalog.ListBooks()
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBook returns one book
// GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	book, err := controller.catalog.Book(c.Param("id"))
	if err != nil {
		respondLendingError(c, err, "get book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// CreateBook adds a book to the catalog
// POST /api/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	book, err := lending.NewBook(req.Title, req.Author, req.PublicationYear, *req.AvailableCopies, req.Description)
	if err != nil {
		respondLendingError(c, err, "create book")
		return
	}

	controller.catalog.AddBook(book)
	respondCreated(c, book.Snapshot())
}
