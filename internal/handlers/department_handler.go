package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type DepartmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDepartmentHandler(db *gorm.DB, audit *audit.Dispatcher) *DepartmentHandler {
	return &DepartmentHandler{db: db, audit: audit}
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	department := models.Department{Name: req.Name}
	if err := h.db.Create(&department).Error; err != nil {
		httperr.Internal(c, "failed_to_create_department", "Could not create the department.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "department_created", Entity: "department", EntityID: &department.IDDepartment})

	httpresp.Created(c, department)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var departments []models.Department
	if err := h.db.Offset(skip).Limit(limit).Find(&departments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_departments", "Could not list departments.")
		return
	}

	httpresp.List(c, departments)
}
