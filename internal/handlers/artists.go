package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"maestro/internal/models"

	"github.com/gin-gonic/gin"
)

// Artists handlers

// ListArtists - GET /api/artists
func (h *Handlers) ListArtists(c *gin.Context) {
	artists, err := h.services.Artists.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(artists, "All artists"))
}

// GetArtistByID - GET /api/artists/:id
func (h *Handlers) GetArtistByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid Id")
		return
	}

	artist, err := h.services.Artists.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(artist, models.CodeSuccess))
}

// CreateArtist - POST /api/artists
func (h *Handlers) CreateArtist(c *gin.Context) {
	var req models.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	artist, err := h.services.Artists.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(artist, fmt.Sprintf("/api/artists/%d", artist.ID)))
}
