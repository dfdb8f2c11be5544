package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type BarberScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberScheduleHandler(db *gorm.DB, audit *audit.Dispatcher) *BarberScheduleHandler {
	return &BarberScheduleHandler{db: db, audit: audit}
}

type CreateBarberScheduleRequest struct {
	DayOfWeek models.DayOfWeek `json:"day_of_week" binding:"required"`
	StartTime string           `json:"start_time" binding:"required"`
	EndTime   string           `json:"end_time" binding:"required"`
}

func (h *BarberScheduleHandler) Create(c *gin.Context) {
	var req CreateBarberScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !req.DayOfWeek.Valid() {
		httperr.BadRequest(c, "invalid_day_of_week", "Day of week must be monday through sunday.")
		return
	}
	if !validClock(req.StartTime) || !validClock(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
		return
	}

	schedule := models.BarberSchedule{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.db.Create(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Could not create the schedule.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "schedule_created", Entity: "barber_schedule", EntityID: &schedule.IDSchedule})

	httpresp.Created(c, schedule)
}

func (h *BarberScheduleHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var schedules []models.BarberSchedule
	if err := h.db.Offset(skip).Limit(limit).Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, schedules)
}
