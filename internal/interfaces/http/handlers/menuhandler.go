package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menuqr-inc/menuqr/internal/application/menu/usecases"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/interfaces/http/middleware"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

type MenuHandler struct {
	getMenuUC        *usecases.GetMenuUseCase
	createCategoryUC *usecases.CreateCategoryUseCase
	updateCategoryUC *usecases.UpdateCategoryUseCase
	deleteCategoryUC *usecases.DeleteCategoryUseCase
	createItemUC     *usecases.CreateItemUseCase
	updateItemUC     *usecases.UpdateItemUseCase
	deleteItemUC     *usecases.DeleteItemUseCase
	restaurantRepo   restaurant.RestaurantRepository
	logger           logger.Interface
}

func NewMenuHandler(
	getMenuUC *usecases.GetMenuUseCase,
	createCategoryUC *usecases.CreateCategoryUseCase,
	updateCategoryUC *usecases.UpdateCategoryUseCase,
	deleteCategoryUC *usecases.DeleteCategoryUseCase,
	createItemUC *usecases.CreateItemUseCase,
	updateItemUC *usecases.UpdateItemUseCase,
	deleteItemUC *usecases.DeleteItemUseCase,
	restaurantRepo restaurant.RestaurantRepository,
) *MenuHandler {
	return &MenuHandler{
		getMenuUC:        getMenuUC,
		createCategoryUC: createCategoryUC,
		updateCategoryUC: updateCategoryUC,
		deleteCategoryUC: deleteCategoryUC,
		createItemUC:     createItemUC,
		updateItemUC:     updateItemUC,
		deleteItemUC:     deleteItemUC,
		restaurantRepo:   restaurantRepo,
		logger:           logger.NewLogger(),
	}
}

// GetMenu serves the owner's menu editor view. Authenticated but not gated.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	rest, err := h.restaurantRepo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to load restaurant", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to load restaurant")
		return
	}
	if rest == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "restaurant not found")
		return
	}

	result, err := h.getMenuUC.Execute(c.Request.Context(), rest.ID())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	rest, ok := gatedRestaurant(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		RestaurantID: rest.ID(),
		Name:         req.Name,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Category created successfully")
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	rest, ok := gatedRestaurant(c)
	if !ok {
		return
	}
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		RestaurantID: rest.ID(),
		CategoryID:   categoryID,
		Name:         req.Name,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	rest, ok := gatedRestaurant(c)
	if !ok {
		return
	}
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteCategoryUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{
		RestaurantID: rest.ID(),
		CategoryID:   categoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

type CreateItemRequest struct {
	CategoryID  uint     `json:"category_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	Images      []string `json:"images"`
	IsVeg       bool     `json:"is_veg"`
	SortOrder   int      `json:"sort_order"`
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	rest, ok := gatedRestaurant(c)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createItemUC.Execute(c.Request.Context(), usecases.CreateItemCommand{
		RestaurantID: rest.ID(),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Images:       req.Images,
		IsVeg:        req.IsVeg,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Menu item created successfully")
}

type UpdateItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
	IsVeg       bool     `json:"is_veg"`
	SortOrder   int      `json:"sort_order"`
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	rest, ok := gatedRestaurant(c)
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateItemUC.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		RestaurantID: rest.ID(),
		ItemID:       itemID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Images:       req.Images,
		Available:    req.Available,
		IsVeg:        req.IsVeg,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Menu item updated successfully", result)
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	rest, ok := gatedRestaurant(c)
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteItemUC.Execute(c.Request.Context(), usecases.DeleteItemCommand{
		RestaurantID: rest.ID(),
		ItemID:       itemID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// gatedRestaurant reads the restaurant the access gate attached. Mutating
// menu routes always run behind the gate, so a miss here is a wiring bug.
func gatedRestaurant(c *gin.Context) (*restaurant.Restaurant, bool) {
	rest, ok := middleware.RestaurantFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusInternalServerError, "restaurant context missing")
		return nil, false
	}
	return rest, true
}
