package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: audit}
}

type CreateCustomerRequest struct {
	IDUser       uint   `json:"id_user" binding:"required"`
	IDGenre      uint   `json:"id_genre" binding:"required"`
	Phone        string `json:"phone"`
	Direction    string `json:"direction"`
	IDDepartment uint   `json:"id_department" binding:"required"`
	IDCity       uint   `json:"id_city" binding:"required"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
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

	customer := models.Customer{
		IDUser:       req.IDUser,
		IDGenre:      req.IDGenre,
		Phone:        req.Phone,
		Direction:    req.Direction,
		IDDepartment: req.IDDepartment,
		IDCity:       req.IDCity,
	}
	if err := h.db.Create(&customer).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, "invalid_reference", "A referenced row does not exist.")
			return
		}
		httperr.Internal(c, "failed_to_create_customer", "Could not create the customer.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "customer_created", Entity: "customer", EntityID: &customer.IDCustomer})

	created, err := h.load(customer.IDCustomer)
	if err != nil {
		httperr.Internal(c, "failed_to_load_customer", "Could not load the created customer.")
		return
	}

	httpresp.Created(c, created)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_customer_id", "Customer id must be a positive integer.")
		return
	}

	customer, err := h.load(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load the customer.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var customers []models.Customer
	if err := h.withRelations().
		Offset(skip).
		Limit(limit).
		Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

// one level of embedding only: the nested User carries no Role, the nested
// City no Department
func (h *CustomerHandler) withRelations() *gorm.DB {
	return h.db.
		Preload("User").
		Preload("Genre").
		Preload("Department").
		Preload("City")
}

func (h *CustomerHandler) load(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := h.withRelations().First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
