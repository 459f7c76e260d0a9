package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoansController struct {
	catalog Catalog
}

func NewLoansController(catalog Catalog) *LoansController {
	return &LoansController{catalog: catalog}
}

// BorrowRequest is the body of POST /api/patrons/:id/loans.
type BorrowRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

// Borrow lends one copy of a book to the patron
// POST /api/patrons/:id/loans
func (lc *LoansController) Borrow(c *gin.Context) {
	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	loan, err := lc.catalog.Lend(c.Param("id"), req.BookID)
	if err != nil {
		respondLendingError(c, err, "borrow")
		return
	}
	respondCreated(c, loan)
}

// Return closes the patron's first active loan of the book
// DELETE /api/patrons/:id/loans/:bookId
func (lc *LoansController) Return(c *gin.Context) {
	loan, err := lc.catalog.Return(c.Param("id"), c.Param("bookId"))
	if err != nil {
		respondLendingError(c, err, "return")
		return
	}
	c.JSON(http.StatusOK, loan)
}
