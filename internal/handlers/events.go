package handlers

import (
	"fmt"
	"net/http"

	"maestro/internal/models"

	"github.com/gin-gonic/gin"
)

// Events handlers

// ListEvents - GET /api/events
func (h *Handlers) ListEvents(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(events, "All events"))
}

// CreateEvent - POST /api/events
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	event, err := h.services.Events.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK[any](nil, fmt.Sprintf("/api/events/%d", event.ID)))
}

// SearchEvents - GET /api/events/search
func (h *Handlers) SearchEvents(c *gin.Context) {
	query := c.Query("query")

	events, err := h.services.Events.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(events, "Matching events"))
}
