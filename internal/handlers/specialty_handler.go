package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type SpecialtyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSpecialtyHandler(db *gorm.DB, audit *audit.Dispatcher) *SpecialtyHandler {
	return &SpecialtyHandler{db: db, audit: audit}
}

type CreateSpecialtyRequest struct {
	Name            string `json:"name" binding:"required"`
	YearsExperience *int   `json:"years_experience"`
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	specialty := models.Specialty{
		Name:            req.Name,
		YearsExperience: req.YearsExperience,
	}
	if err := h.db.Create(&specialty).Error; err != nil {
		httperr.Internal(c, "failed_to_create_specialty", "Could not create the specialty.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "specialty_created", Entity: "specialty", EntityID: &specialty.IDSpecialty})

	httpresp.Created(c, specialty)
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var specialties []models.Specialty
	if err := h.db.Offset(skip).Limit(limit).Find(&specialties).Error; err != nil {
		httperr.Internal(c, "failed_to_list_specialties", "Could not list specialties.")
		return
	}

	httpresp.List(c, specialties)
}
