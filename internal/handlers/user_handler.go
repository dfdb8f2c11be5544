package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IDRole   *uint  `json:"id_role"`
}

// Create stores the credential as a bcrypt hash; the hash never leaves the
// row (json:"-").
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the user.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	if req.IDRole != nil {
		if !requireRef(c, h.db, &models.Role{}, "id_role", "role", *req.IDRole) {
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash the password.")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		IDRole:       req.IDRole,
	}
	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_exists", "A user with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create the user.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "user_created", Entity: "user", EntityID: &user.IDUser})

	var created models.User
	if err := h.db.Preload("Role").First(&created, user.IDUser).Error; err != nil {
		httperr.Internal(c, "failed_to_load_user", "Could not load the created user.")
		return
	}

	httpresp.Created(c, created)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_user_id", "User id must be a positive integer.")
		return
	}

	var user models.User
	if err := h.db.Preload("Role").First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not load the user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var users []models.User
	if err := h.db.
		Preload("Role").
		Offset(skip).
		Limit(limit).
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}
