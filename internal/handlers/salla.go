// internal/handlers/salla.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/descg/descg-backend/internal/i18n"
	"github.com/descg/descg-backend/internal/services"
	"github.com/descg/descg-backend/internal/utils"
)

type SallaHandler struct {
	sallaService *services.SallaService
}

func NewSallaHandler(sallaService *services.SallaService) *SallaHandler {
	return &SallaHandler{
		sallaService: sallaService,
	}
}

// POST /api/webhooks/salla
func (h *SallaHandler) Webhook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var event services.SallaWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "payload"), err.Error())
		return
	}

	switch event.Event {
	case "product.created":
		if err := h.sallaService.HandleProductCreated(&event); err != nil {
			logrus.WithError(err).WithField("merchant", event.Merchant).Error("salla webhook processing failed")
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeySallaWebhookError))
			return
		}
		utils.SuccessResponse(c, gin.H{
			"message": i18n.T(lang, i18n.KeySallaProductSaved),
		})
	default:
		// Unhandled events are acknowledged so Salla does not retry them.
		logrus.WithField("event", event.Event).Info("salla webhook event ignored")
		utils.SuccessResponse(c, gin.H{
			"message": "event ignored",
		})
	}
}
