package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type LocationHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewLocationHandler(db *gorm.DB, audit *audit.Dispatcher) *LocationHandler {
	return &LocationHandler{db: db, audit: audit}
}

type CreateLocationRequest struct {
	IDBarbershop uint   `json:"id_barbershop" binding:"required"`
	IDDepartment uint   `json:"id_department" binding:"required"`
	IDCity       uint   `json:"id_city" binding:"required"`
	Address      string `json:"address" binding:"required"`
	OpeningHour  string `json:"opening_hour" binding:"required"`
	ClosingHour  string `json:"closing_hour" binding:"required"`
}

// Create validates the hour format only; opening after closing is accepted,
// matching the stored schema.
func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validClock(req.OpeningHour) || !validClock(req.ClosingHour) {
		httperr.BadRequest(c, "invalid_hour", "Hours must be HH:MM.")
		return
	}

	if !requireRef(c, h.db, &models.Barbershop{}, "id_barbershop", "barbershop", req.IDBarbershop) {
		return
	}
	if !requireRef(c, h.db, &models.Department{}, "id_department", "department", req.IDDepartment) {
		return
	}
	if !requireRef(c, h.db, &models.City{}, "id_city", "city", req.IDCity) {
		return
	}

	location := models.Location{
		IDBarbershop: req.IDBarbershop,
		IDDepartment: req.IDDepartment,
		IDCity:       req.IDCity,
		Address:      req.Address,
		OpeningHour:  req.OpeningHour,
		ClosingHour:  req.ClosingHour,
	}
	if err := h.db.Create(&location).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, "invalid_reference", "A referenced row does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_create_location", "Could not create the location.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "location_created", Entity: "location", EntityID: &location.IDLocation})

	var created models.Location
	if err := h.withRelations().First(&created, location.IDLocation).Error; err != nil {
		httperr.Internal(c, "failed_to_load_location", "Could not load the created location.")
		return
	}

	httpresp.Created(c, created)
}

func (h *LocationHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var locations []models.Location
	if err := h.withRelations().
		Offset(skip).
		Limit(limit).
		Find(&locations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_locations", "Could not list locations.")
		return
	}

	httpresp.List(c, locations)
}

func (h *LocationHandler) withRelations() *gorm.DB {
	return h.db.
		Preload("Barbershop").
		Preload("Department").
		Preload("City")
}
