package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: audit}
}

type CreateBarberRequest struct {
	IDUser           uint   `json:"id_user" binding:"required"`
	IDGenre          uint   `json:"id_genre" binding:"required"`
	IDBarbershop     *uint  `json:"id_barbershop"`
	IDSpecialty      *uint  `json:"id_specialty"`
	IDDepartment     uint   `json:"id_department" binding:"required"`
	IDCity           uint   `json:"id_city" binding:"required"`
	IDBarberSchedule *uint  `json:"id_barber_schedule"`
	Phone            string `json:"phone"`
	Direction        string `json:"direction"`
	Points           int    `json:"points"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !requireRef(c, h.db, &models.User{}, "id_user", "user", req.IDUser) {
		return
	}
	if !requireRef(c, h.db, &models.Genre{}, "id_genre", "genre", req.IDGenre) {
		return
	}
	if !requireRef(c, h.db, &models.Department{}, "id_department", "department", req.IDDepartment) {
		return
	}
	if !requireRef(c, h.db, &models.City{}, "id_city", "city", req.IDCity) {
		return
	}
	if req.IDBarbershop != nil {
		if !requireRef(c, h.db, &models.Barbershop{}, "id_barbershop", "barbershop", *req.IDBarbershop) {
			return
		}
	}
	if req.IDSpecialty != nil {
		if !requireRef(c, h.db, &models.Specialty{}, "id_specialty", "specialty", *req.IDSpecialty) {
			return
		}
	}
	if req.IDBarberSchedule != nil {
		if !requireRef(c, h.db, &models.BarberSchedule{}, "id_schedule", "schedule", *req.IDBarberSchedule) {
			return
		}
	}

	barber := models.Barber{
		IDUser:           req.IDUser,
		IDGenre:          req.IDGenre,
		IDBarbershop:     req.IDBarbershop,
		IDSpecialty:      req.IDSpecialty,
		IDDepartment:     req.IDDepartment,
		IDCity:           req.IDCity,
		IDBarberSchedule: req.IDBarberSchedule,
		Phone:            req.Phone,
		Direction:        req.Direction,
		Points:           req.Points,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, "invalid_reference", "A referenced row does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_create_barber", "Could not create the barber.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "barber_created", Entity: "barber", EntityID: &barber.IDBarber})

	created, err := h.load(barber.IDBarber)
	if err != nil {
		httperr.Internal(c, "failed_to_load_barber", "Could not load the created barber.")
		return
	}

	httpresp.Created(c, created)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be a positive integer.")
		return
	}

	barber, err := h.load(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Could not load the barber.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var barbers []models.Barber
	if err := h.withRelations().
		Offset(skip).
		Limit(limit).
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) ListByCity(c *gin.Context) {
	cityID, ok := idParam(c, "city_id")
	if !ok {
		httperr.BadRequest(c, "invalid_city_id", "City id must be a positive integer.")
		return
	}

	var barbers []models.Barber
	if err := h.withRelations().
		Where("id_city = ?", cityID).
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) withRelations() *gorm.DB {
	return h.db.
		Preload("User").
		Preload("Genre").
		Preload("Specialty").
		Preload("Department").
		Preload("City").
		Preload("Schedule")
}

func (h *BarberHandler) load(id uint) (*models.Barber, error) {
	var barber models.Barber
	if err := h.withRelations().First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}
