package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lending/internal/lending"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"has_more"`
	TotalPages int   `json:"total_pages,omitempty"`
}

// Machine-readable codes for lending failures.
const (
	CodeBookUnavailable    = "book_unavailable"
	CodeNoActiveLoan       = "no_active_loan"
	CodeInsufficientCopies = "insufficient_copies"
	CodeInvalidCopies      = "invalid_copies"
	CodeBookNotFound       = "book_not_found"
	CodePatronNotFound     = "patron_not_found"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondLendingError maps a lending error to its status code.
func respondLendingError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, lending.ErrBookNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "book not found", Code: CodeBookNotFound})
	case errors.Is(err, lending.ErrPatronNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "patron not found", Code: CodePatronNotFound})
	case errors.Is(err, lending.ErrBookUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: CodeBookUnavailable})
	case errors.Is(err, lending.ErrNoActiveLoan):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: CodeNoActiveLoan})
	case errors.Is(err, lending.ErrInsufficientCopies):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: CodeInsufficientCopies})
	case errors.Is(err, lending.ErrInvalidCopies):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidCopies})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
