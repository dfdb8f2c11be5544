package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type CityHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCityHandler(db *gorm.DB, audit *audit.Dispatcher) *CityHandler {
	return &CityHandler{db: db, audit: audit}
}

type CreateCityRequest struct {
	Name         string `json:"name" binding:"required"`
	IDDepartment uint   `json:"id_department" binding:"required"`
}

func (h *CityHandler) Create(c *gin.Context) {
	var req CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !requireRef(c, h.db, &models.Department{}, "id_department", "department", req.IDDepartment) {
		return
	}

	city := models.City{
		Name:         req.Name,
		IDDepartment: req.IDDepartment,
	}
	if err := h.db.Create(&city).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, "invalid_department_reference", "Referenced department does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_create_city", "Could not create the city.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "city_created", Entity: "city", EntityID: &city.IDCity})

	var created models.City
	if err := h.db.Preload("Department").First(&created, city.IDCity).Error; err != nil {
		httperr.Internal(c, "failed_to_load_city", "Could not load the created city.")
		return
	}

	httpresp.Created(c, created)
}

func (h *CityHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var cities []models.City
	if err := h.db.
		Preload("Department").
		Offset(skip).
		Limit(limit).
		Find(&cities).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cities", "Could not list cities.")
		return
	}

	httpresp.List(c, cities)
}

func (h *CityHandler) ListByDepartment(c *gin.Context) {
	departmentID, ok := idParam(c, "department_id")
	if !ok {
		httperr.BadRequest(c, "invalid_department_id", "Department id must be a positive integer.")
		return
	}

	var cities []models.City
	if err := h.db.
		Preload("Department").
		Where("id_department = ?", departmentID).
		Find(&cities).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cities", "Could not list cities.")
		return
	}

	httpresp.List(c, cities)
}
