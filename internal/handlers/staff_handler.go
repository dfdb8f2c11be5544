package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type StaffHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStaffHandler(db *gorm.DB, audit *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{db: db, audit: audit}
}

type CreateStaffRequest struct {
	IDBarber uint `json:"id_barber" binding:"required"`
}

// Create does not enforce barber uniqueness: the same barber may appear in
// several staff rows, matching the stored schema.
func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !requireRef(c, h.db, &models.Barber{}, "id_barber", "barber", req.IDBarber) {
		return
	}

	staff := models.Staff{IDBarber: req.IDBarber}
	if err := h.db.Create(&staff).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, "invalid_barber_reference", "Referenced barber does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_create_staff", "Could not create the staff row.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "staff_created", Entity: "staff", EntityID: &staff.IDStaff})

	var created models.Staff
	if err := h.db.Preload("Barber").First(&created, staff.IDStaff).Error; err != nil {
		httperr.Internal(c, "failed_to_load_staff", "Could not load the created staff row.")
		return
	}

	httpresp.Created(c, created)
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id must be a positive integer.")
		return
	}

	var staff models.Staff
	if err := h.db.Preload("Barber").First(&staff, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Could not load the staff row.")
		return
	}

	httpresp.OK(c, staff)
}

// GetByBarber returns the lowest-id staff row for the barber. Several rows
// can reference the same barber; first match by id keeps the answer
// deterministic.
func (h *StaffHandler) GetByBarber(c *gin.Context) {
	barberID, ok := idParam(c, "barber_id")
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be a positive integer.")
		return
	}

	var staff models.Staff
	if err := h.db.
		Preload("Barber").
		Where("id_barber = ?", barberID).
		Order("id_staff ASC").
		First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff not found for this barber.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Could not load the staff row.")
		return
	}

	httpresp.OK(c, staff)
}

func (h *StaffHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var staff []models.Staff
	if err := h.db.
		Preload("Barber").
		Offset(skip).
		Limit(limit).
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

// Delete refuses when barbershops still reference the row, so no barbershop
// is ever left pointing at a missing staff id.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id must be a positive integer.")
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Could not load the staff row.")
		return
	}

	var dependents int64
	if err := h.db.Model(&models.Barbershop{}).
		Where("id_staff = ?", id).
		Count(&dependents).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Could not delete the staff row.")
		return
	}
	if dependents > 0 {
		httperr.BadRequest(c, "staff_in_use", "Staff is still referenced by a barbershop.")
		return
	}

	if err := h.db.Delete(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Could not delete the staff row.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "staff_deleted", Entity: "staff", EntityID: &staff.IDStaff})

	httpresp.OK(c, gin.H{"message": "Staff deleted successfully"})
}
