// internal/handlers/otp.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/descg/descg-backend/internal/i18n"
	"github.com/descg/descg-backend/internal/services"
	"github.com/descg/descg-backend/internal/utils"
)

type OTPHandler struct {
	otpService *services.OTPService
}

func NewOTPHandler(otpService *services.OTPService) *OTPHandler {
	return &OTPHandler{
		otpService: otpService,
	}
}

// POST /api/otp/send
func (h *OTPHandler) Send(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.otpService.Send(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOTPSent),
	})
}

// POST /api/otp/verify
func (h *OTPHandler) Verify(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.otpService.Verify(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOTPInvalid), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOTPVerified),
	})
}

// POST /api/otp/resend
func (h *OTPHandler) Resend(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.otpService.Resend(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOTPSent),
	})
}
