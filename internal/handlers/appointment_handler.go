package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAppointmentHandler(db *gorm.DB, audit *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{db: db, audit: audit}
}

type CreateAppointmentRequest struct {
	IDCustomer      uint                     `json:"id_customer" binding:"required"`
	IDBarber        uint                     `json:"id_barber" binding:"required"`
	AppointmentDate string                   `json:"appointment_date" binding:"required"`
	StartTime       string                   `json:"start_time" binding:"required"`
	EndTime         string                   `json:"end_time" binding:"required"`
	Status          models.AppointmentStatus `json:"status"`
}

type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

// Create performs no overlap or availability check; overlapping appointments
// for the same barber are accepted.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validDate(req.AppointmentDate) {
		httperr.BadRequest(c, "invalid_date", "Appointment date must be YYYY-MM-DD.")
		return
	}
	if !validClock(req.StartTime) || !validClock(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		httperr.BadRequest(c, "invalid_status", "Status must be pending, confirmed, cancelled or done.")
		return
	}

	if !requireRef(c, h.db, &models.Customer{}, "id_customer", "customer", req.IDCustomer) {
		return
	}
	if !requireRef(c, h.db, &models.Barber{}, "id_barber", "barber", req.IDBarber) {
		return
	}

	ap := models.Appointment{
		IDCustomer:      req.IDCustomer,
		IDBarber:        req.IDBarber,
		AppointmentDate: req.AppointmentDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          status,
	}
	if err := h.db.Create(&ap).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, "invalid_reference", "A referenced row does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "appointment_created", Entity: "appointment", EntityID: &ap.IDAppointment})

	created, err := h.load(ap.IDAppointment)
	if err != nil {
		httperr.Internal(c, "failed_to_load_appointment", "Could not load the created appointment.")
		return
	}

	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a positive integer.")
		return
	}

	ap, err := h.load(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Could not load the appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var appointments []models.Appointment
	if err := h.withRelations().
		Offset(skip).
		Limit(limit).
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := idParam(c, "customer_id")
	if !ok {
		httperr.BadRequest(c, "invalid_customer_id", "Customer id must be a positive integer.")
		return
	}

	var appointments []models.Appointment
	if err := h.withRelations().
		Where("id_customer = ?", customerID).
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	barberID, ok := idParam(c, "barber_id")
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be a positive integer.")
		return
	}

	var appointments []models.Appointment
	if err := h.withRelations().
		Where("id_barber = ?", barberID).
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// UpdateStatus writes the new value unconditionally. Any member of the enum
// may follow any other; only membership is checked. The value is read from
// the JSON body, falling back to a ?status= query parameter.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a positive integer.")
		return
	}

	var req UpdateAppointmentStatusRequest
	_ = c.ShouldBindJSON(&req)
	if req.Status == "" {
		req.Status = models.AppointmentStatus(c.Query("status"))
	}

	if !req.Status.Valid() {
		httperr.BadRequest(c, "invalid_status", "Status must be pending, confirmed, cancelled or done.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Could not load the appointment.")
		return
	}

	if err := h.db.Model(&ap).Update("status", req.Status).Error; err != nil {
		httperr.Internal(c, "failed_to_update_status", "Could not update the appointment status.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.IDAppointment,
		Metadata: map[string]any{"status": req.Status},
	})

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) withRelations() *gorm.DB {
	return h.db.
		Preload("Customer").
		Preload("Barber")
}

func (h *AppointmentHandler) load(id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := h.withRelations().First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}
