package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/httperr"
	"github.com/barberian/barberian-api/internal/validators"
)

// requireRef answers the request with a client error when the referenced row
// is missing. Returns false when the request has already been answered.
func requireRef(c *gin.Context, db *gorm.DB, model any, column, name string, id uint) bool {
	ok, err := validators.Exists(db, model, column, id)
	if err != nil {
		httperr.Internal(c, "reference_check_failed", "Could not validate the "+name+" reference.")
		return false
	}
	if !ok {
		httperr.BadRequest(c, "invalid_"+name+"_reference", "Referenced "+name+" does not exist.")
		return false
	}
	return true
}
