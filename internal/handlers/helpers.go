// internal/handlers/helpers.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/descg/descg-backend/internal/i18n"
	"github.com/descg/descg-backend/internal/utils"
)

// currentUserID reads the authenticated user's ID set by the auth middleware.
// Writes the error response itself when the context carries no valid ID.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	return id, true
}

// parseUUIDParam parses a UUID path parameter, responding with a 400 when it
// is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, name), nil)
		return uuid.Nil, false
	}

	return id, true
}
