package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lending/internal/lending"
)

type PatronsController struct {
	catalog Catalog
}

func NewPatronsController(catalog Catalog) *PatronsController {
	return &PatronsController{catalog: catalog}
}

// RegisterPatronRequest is the body of POST /api/patrons.
type RegisterPatronRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// GetAllPatrons returns every patron in registration order
// GET /api/patrons
func (pc *PatronsController) GetAllPatrons(c *gin.Context) {
	patrons := pc.catalog.ListPatrons()
	c.IndentedJSON(http.StatusOK, gin.H{"patrons": patrons, "count": len(patrons)})
}

// GetPatron returns one patron with their active loans
// GET /api/patrons/:id
func (pc *PatronsController) GetPatron(c *gin.Context) {
	patron, err := pc.catalog.Patron(c.Param("id"))
	if err != nil {
		respondLendingError(c, err, "get patron")
		return
	}
	c.IndentedJSON(http.StatusOK, patron)
}

// RegisterPatron adds a patron
// POST /api/patrons
func (pc *PatronsController) RegisterPatron(c *gin.Context) {
	var req RegisterPatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	patron := lending.NewPatron(req.FirstName, req.LastName, req.Email)
	pc.catalog.RegisterPatron(patron)
	respondCreated(c, patron.Snapshot())
}
