package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/usecases"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

type SubscriptionHandler struct {
	listPlansUC       *usecases.ListPlansUseCase
	getSubscriptionUC *usecases.GetSubscriptionUseCase
	createOrderUC     *usecases.CreateOrderUseCase
	verifyPaymentUC   *usecases.VerifyPaymentUseCase
	restaurantRepo    restaurant.RestaurantRepository
	logger            logger.Interface
}

func NewSubscriptionHandler(
	listPlansUC *usecases.ListPlansUseCase,
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	createOrderUC *usecases.CreateOrderUseCase,
	verifyPaymentUC *usecases.VerifyPaymentUseCase,
	restaurantRepo restaurant.RestaurantRepository,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		listPlansUC:       listPlansUC,
		getSubscriptionUC: getSubscriptionUC,
		createOrderUC:     createOrderUC,
		verifyPaymentUC:   verifyPaymentUC,
		restaurantRepo:    restaurantRepo,
		logger:            logger.NewLogger(),
	}
}

// ListPlans is public so the pricing page can render without a login.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context(), false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", plans)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	rest, ok := h.ownRestaurant(c)
	if !ok {
		return
	}

	status, err := h.getSubscriptionUC.Execute(c.Request.Context(), rest.ID())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", status)
}

type CreateOrderRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

func (h *SubscriptionHandler) CreateOrder(c *gin.Context) {
	rest, ok := h.ownRestaurant(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		RestaurantID: rest.ID(),
		PlanID:       req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", order)
}

type VerifyPaymentRequest struct {
	PlanID    uint   `json:"plan_id" binding:"required"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

func (h *SubscriptionHandler) VerifyPayment(c *gin.Context) {
	rest, ok := h.ownRestaurant(c)
	if !ok {
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.verifyPaymentUC.Execute(c.Request.Context(), usecases.VerifyPaymentCommand{
		RestaurantID: rest.ID(),
		PlanID:       req.PlanID,
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		Signature:    req.Signature,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription activated", result)
}

// ownRestaurant resolves the caller's restaurant. Subscription routes are
// authenticated but deliberately not behind the access gate: a lapsed tenant
// must still be able to see plans and pay.
func (h *SubscriptionHandler) ownRestaurant(c *gin.Context) (*restaurant.Restaurant, bool) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return nil, false
	}

	rest, err := h.restaurantRepo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to load restaurant", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to load restaurant")
		return nil, false
	}
	if rest == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "restaurant not found")
		return nil, false
	}
	return rest, true
}
