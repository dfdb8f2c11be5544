package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type RoleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewRoleHandler(db *gorm.DB, audit *audit.Dispatcher) *RoleHandler {
	return &RoleHandler{db: db, audit: audit}
}

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	role := models.Role{Name: req.Name}
	if err := h.db.Create(&role).Error; err != nil {
		httperr.Internal(c, "failed_to_create_role", "Could not create the role.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "role_created", Entity: "role", EntityID: &role.IDRole})

	httpresp.Created(c, role)
}

func (h *RoleHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var roles []models.Role
	if err := h.db.Offset(skip).Limit(limit).Find(&roles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_roles", "Could not list roles.")
		return
	}

	httpresp.List(c, roles)
}
