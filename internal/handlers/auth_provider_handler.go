package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/httpresp"
	"github.com/barberian/barberian-api/internal/models"
)

type AuthProviderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAuthProviderHandler(db *gorm.DB, audit *audit.Dispatcher) *AuthProviderHandler {
	return &AuthProviderHandler{db: db, audit: audit}
}

type CreateAuthProviderRequest struct {
	Provider         models.AuthProviderKind `json:"provider" binding:"required"`
	ProviderIDGoogle string                  `json:"provider_id_google"`
	Token            string                  `json:"token"`
}

func (h *AuthProviderHandler) Create(c *gin.Context) {
	var req CreateAuthProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !req.Provider.Valid() {
		httperr.BadRequest(c, "invalid_provider", "Provider must be local or google.")
		return
	}

	provider := models.AuthProvider{
		Provider:         req.Provider,
		ProviderIDGoogle: req.ProviderIDGoogle,
		Token:            req.Token,
	}
	if err := h.db.Create(&provider).Error; err != nil {
		httperr.Internal(c, "failed_to_create_auth_provider", "Could not create the auth provider.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "auth_provider_created", Entity: "auth_provider", EntityID: &provider.IDAuthProvider})

	httpresp.Created(c, provider)
}

func (h *AuthProviderHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var providers []models.AuthProvider
	if err := h.db.Offset(skip).Limit(limit).Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_auth_providers", "Could not list auth providers.")
		return
	}

	httpresp.List(c, providers)
}
