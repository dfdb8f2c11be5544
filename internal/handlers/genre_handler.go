package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type GenreHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewGenreHandler(db *gorm.DB, audit *audit.Dispatcher) *GenreHandler {
	return &GenreHandler{db: db, audit: audit}
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	genre := models.Genre{Name: req.Name}
	if err := h.db.Create(&genre).Error; err != nil {
		httperr.Internal(c, "failed_to_create_genre", "Could not create the genre.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "genre_created", Entity: "genre", EntityID: &genre.IDGenre})

	httpresp.Created(c, genre)
}

func (h *GenreHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var genres []models.Genre
	if err := h.db.Offset(skip).Limit(limit).Find(&genres).Error; err != nil {
		httperr.Internal(c, "failed_to_list_genres", "Could not list genres.")
		return
	}

	httpresp.List(c, genres)
}
