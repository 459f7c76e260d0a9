package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lending/internal/entities"
)

type JournalController struct {
	journal JournalReader
}

func NewJournalController(journal JournalReader) *JournalController {
	return &JournalController{
		journal: journal,
	}
}

// GetEvents returns paginated journal entries as JSON
// GET /api/journal
func (jc *JournalController) GetEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 1 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	eventType := c.Query("type")

	var events []entities.LendingEvent
	var total int64
	var err error

	if eventType != "" {
		events, total, err = jc.journal.GetEventsByType(entities.LendingEventType(eventType), limit, offset)
	} else {
		events, total, err = jc.journal.GetEvents(limit, offset)
	}

	if err != nil {
		respondInternalError(c, err, "journal events")
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       events,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+len(events)) < total,
		TotalPages: totalPages,
	})
}

// GetPatronHistory returns every journal entry about a patron
// GET /api/patrons/:id/history
func (jc *JournalController) GetPatronHistory(c *gin.Context) {
	events, err := jc.journal.GetPatronHistory(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "patron history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}
