package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "github.com/menuqr-inc/menuqr/internal/application/admin/usecases"
	authusecases "github.com/menuqr-inc/menuqr/internal/application/auth/usecases"
	subusecases "github.com/menuqr-inc/menuqr/internal/application/subscription/usecases"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

type AdminHandler struct {
	getStatsUC          *adminusecases.GetStatsUseCase
	listRestaurantsUC   *adminusecases.ListRestaurantsUseCase
	listSubscriptionsUC *adminusecases.ListSubscriptionsUseCase
	listPlansUC         *subusecases.ListPlansUseCase
	updatePlanUC        *subusecases.UpdatePlanUseCase
	extendUC            *subusecases.ExtendSubscriptionUseCase
	grantFreeMonthUC    *subusecases.GrantFreeMonthUseCase
	createAdminUC       *authusecases.CreateAdminUseCase
	logger              logger.Interface
}

func NewAdminHandler(
	getStatsUC *adminusecases.GetStatsUseCase,
	listRestaurantsUC *adminusecases.ListRestaurantsUseCase,
	listSubscriptionsUC *adminusecases.ListSubscriptionsUseCase,
	listPlansUC *subusecases.ListPlansUseCase,
	updatePlanUC *subusecases.UpdatePlanUseCase,
	extendUC *subusecases.ExtendSubscriptionUseCase,
	grantFreeMonthUC *subusecases.GrantFreeMonthUseCase,
	createAdminUC *authusecases.CreateAdminUseCase,
) *AdminHandler {
	return &AdminHandler{
		getStatsUC:          getStatsUC,
		listRestaurantsUC:   listRestaurantsUC,
		listSubscriptionsUC: listSubscriptionsUC,
		listPlansUC:         listPlansUC,
		updatePlanUC:        updatePlanUC,
		extendUC:            extendUC,
		grantFreeMonthUC:    grantFreeMonthUC,
		createAdminUC:       createAdminUC,
		logger:              logger.NewLogger(),
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	result, err := h.listRestaurantsUC.Execute(c.Request.Context(), adminusecases.ListRestaurantsQuery{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Restaurants, result.Total, result.Page, result.PageSize)
}

func (h *AdminHandler) ListSubscriptions(c *gin.Context) {
	query := adminusecases.ListSubscriptionsQuery{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
	}

	if raw := c.Query("restaurant_id"); raw != "" {
		id := uint(parseIntQuery(c, "restaurant_id", 0))
		if id == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid restaurant_id")
			return
		}
		query.RestaurantID = &id
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	result, err := h.listSubscriptionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Subscriptions, result.Total, result.Page, result.PageSize)
}

// ListPlans returns all plans including inactive ones for the admin editor.
func (h *AdminHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context(), true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", plans)
}

type UpdatePlanRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        string   `json:"price" binding:"required"`
	DurationDays int      `json:"duration_days" binding:"required,min=1"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
	BadgeText    string   `json:"badge_text"`
	BadgeColor   string   `json:"badge_color"`
	BadgeEnabled bool     `json:"badge_enabled"`
}

func (h *AdminHandler) UpdatePlan(c *gin.Context) {
	planID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), subusecases.UpdatePlanCommand{
		PlanID:       planID,
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
		IsActive:     req.IsActive,
		BadgeText:    req.BadgeText,
		BadgeColor:   req.BadgeColor,
		BadgeEnabled: req.BadgeEnabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

type ExtendSubscriptionRequest struct {
	Days int `json:"days" binding:"required,min=1"`
}

func (h *AdminHandler) ExtendSubscription(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ExtendSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.extendUC.Execute(c.Request.Context(), subusecases.ExtendSubscriptionCommand{
		RestaurantID: restaurantID,
		Days:         req.Days,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Subscription extended", result)
}

func (h *AdminHandler) GrantFreeMonth(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	result, err := h.grantFreeMonthUC.Execute(c.Request.Context(), subusecases.GrantFreeMonthCommand{
		RestaurantID: restaurantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Free month granted", result)
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createAdminUC.Execute(c.Request.Context(), authusecases.CreateAdminCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Admin created successfully")
}
