package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

// Get runs nine independent count queries. Each counter is its own snapshot;
// no cross-counter consistency is promised.
func (h *StatsHandler) Get(c *gin.Context) {
	counters := []struct {
		key   string
		model any
	}{
		{"users", &models.User{}},
		{"customers", &models.Customer{}},
		{"barbers", &models.Barber{}},
		{"staff", &models.Staff{}},
		{"appointments", &models.Appointment{}},
		{"barbershops", &models.Barbershop{}},
		{"specialties", &models.Specialty{}},
		{"departments", &models.Department{}},
		{"cities", &models.City{}},
	}

	stats := gin.H{}
	for _, counter := range counters {
		var count int64
		if err := h.db.Model(counter.model).Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_count_"+counter.key, "Could not count "+counter.key+".")
			return
		}
		stats[counter.key] = count
	}

	httpresp.OK(c, stats)
}
