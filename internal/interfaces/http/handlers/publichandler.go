package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menuqr-inc/menuqr/internal/application/menu/usecases"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

// PublicHandler serves the unauthenticated diner-facing endpoints.
type PublicHandler struct {
	getPublicMenuUC *usecases.GetPublicMenuUseCase
}

func NewPublicHandler(getPublicMenuUC *usecases.GetPublicMenuUseCase) *PublicHandler {
	return &PublicHandler{getPublicMenuUC: getPublicMenuUC}
}

func (h *PublicHandler) GetMenu(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing restaurant slug")
		return
	}

	result, err := h.getPublicMenuUC.Execute(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
