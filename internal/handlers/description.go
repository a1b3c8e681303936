// internal/handlers/description.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/descg/descg-backend/internal/ai"
	"github.com/descg/descg-backend/internal/i18n"
	"github.com/descg/descg-backend/internal/services"
	"github.com/descg/descg-backend/internal/store"
	"github.com/descg/descg-backend/internal/utils"
)

// DescriptionHandler serves the generation flow plus the administrative CRUD
// over the generation history.
type DescriptionHandler struct {
	generationService *services.GenerationService
	logService        *services.DescriptionLogService
}

func NewDescriptionHandler(generationService *services.GenerationService, logService *services.DescriptionLogService) *DescriptionHandler {
	return &DescriptionHandler{
		generationService: generationService,
		logService:        logService,
	}
}

// POST /api/descriptions/generate/:productId
func (h *DescriptionHandler) Generate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	// The body is optional; an empty body generates with the product's stored
	// settings.
	var req services.GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}

		if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
	}

	result, err := h.generationService.Generate(c.Request.Context(), userID, productID, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		logrus.WithError(err).WithField("product_id", productID).Error("description generation failed")

		var provErr *ai.ProviderError
		if errors.As(err, &provErr) {
			utils.ErrorResponse(c, http.StatusInternalServerError, "PROVIDER_ERROR",
				i18n.T(lang, i18n.KeyDescriptionFailed), err.Error())
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyDescriptionFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyDescriptionGenerated),
		"description": result.Text,
		"log_id":      result.LogID,
		"ai_provider": result.Provider,
	})
}

// GET /api/descriptions/by-product/:productId
func (h *DescriptionHandler) ListByProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	logs, err := h.generationService.ListHistory(userID, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"logs": logs,
	})
}

// GET /api/descriptions
func (h *DescriptionHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.logService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, result)
}

// GET /api/descriptions/:id
func (h *DescriptionHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	log, err := h.logService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "description_log")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"log": log,
	})
}

// POST /api/descriptions
func (h *DescriptionHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	log, err := h.logService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLogCreated),
		"log":     log,
	})
}

// PUT /api/descriptions/:id
func (h *DescriptionHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	log, err := h.logService.Update(id, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "description_log")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLogUpdated),
		"log":     log,
	})
}

// DELETE /api/descriptions/:id
func (h *DescriptionHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.logService.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "description_log")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLogDeleted),
	})
}
