package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type BarbershopHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarbershopHandler(db *gorm.DB, audit *audit.Dispatcher) *BarbershopHandler {
	return &BarbershopHandler{db: db, audit: audit}
}

type CreateBarbershopRequest struct {
	IDStaff uint   `json:"id_staff" binding:"required"`
	Phone   string `json:"phone"`
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !requireRef(c, h.db, &models.Staff{}, "id_staff", "staff", req.IDStaff) {
		return
	}

	shop := models.Barbershop{
		IDStaff: req.IDStaff,
		Phone:   req.Phone,
	}
	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barbershop", "Could not create the barbershop.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "barbershop_created", Entity: "barbershop", EntityID: &shop.IDBarbershop})

	httpresp.Created(c, shop)
}

func (h *BarbershopHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var shops []models.Barbershop
	if err := h.db.Offset(skip).Limit(limit).Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Could not list barbershops.")
		return
	}

	httpresp.List(c, shops)
}
